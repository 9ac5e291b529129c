package movies

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"reliva/internal/httpx"
	"reliva/internal/media"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

var (
	mediaTypes = map[string]bool{"movie": true, "tv": true}
	windows    = map[string]bool{"day": true, "week": true}
)

type Service struct {
	catalog Catalog
	videos  VideoSearcher
	cache   Cache
	logger  zerolog.Logger
}

// NewService wires the TMDB and YouTube adapters. A nil cache disables proxy caching.
func NewService(catalog Catalog, videos VideoSearcher, cache Cache, logger zerolog.Logger) *Service {
	return &Service{catalog: catalog, videos: videos, cache: cache, logger: logger}
}

func proxyCacheKey(path string, query url.Values) string {
	q := url.Values{}
	for k, vs := range query {
		if k != "api_key" {
			q[k] = vs
		}
	}
	return strings.TrimLeft(path, "/") + "?" + q.Encode()
}

// Proxy forwards one request to TMDB. Successful GET responses are cached for ProxyTTL;
// every other status is forwarded uncached.
func (s *Service) Proxy(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*ProxyResponse, error) {
	if !s.catalog.Configured() {
		return nil, httpx.NotConfigured("TMDB API", "TMDB_API_KEY")
	}
	if strings.Trim(path, "/") == "" {
		return nil, httpx.MissingParameter("path")
	}

	cacheable := method == http.MethodGet && s.cache != nil
	key := proxyCacheKey(path, query)
	if cacheable {
		if hit, ok := s.cached(ctx, key); ok {
			return hit, nil
		}
	}

	resp, err := s.catalog.Proxy(ctx, method, path, query, body, contentType)
	if err != nil {
		return nil, httpx.UpstreamUnavailable("TMDB", err)
	}

	out := &ProxyResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}
	if out.ContentType == "" {
		out.ContentType = "application/json"
	}

	if cacheable && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if encoded, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, encoded, ProxyTTL); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Msg("tmdb proxy cache write failed")
			}
		}
	}
	return out, nil
}

func (s *Service) cached(ctx context.Context, key string) (*ProxyResponse, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("tmdb proxy cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var hit ProxyResponse
	if err := json.Unmarshal(raw, &hit); err != nil {
		return nil, false
	}
	hit.Cached = true
	return &hit, true
}

func normalizeMediaType(mediaType string) (string, error) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" {
		return "movie", nil
	}
	if !mediaTypes[mediaType] {
		return "", httpx.BadRequest("type must be movie or tv")
	}
	return mediaType, nil
}

func (s *Service) Search(ctx context.Context, mediaType, query string, page int) ([]media.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return nil, httpx.MissingParameter("query")
	}
	if !s.catalog.Configured() {
		return nil, httpx.NotConfigured("TMDB API", "TMDB_API_KEY")
	}
	mediaType, err := normalizeMediaType(mediaType)
	if err != nil {
		return nil, err
	}

	payload, err := s.catalog.Search(ctx, mediaType, strings.TrimSpace(query), page)
	if err != nil {
		return nil, httpx.UpstreamUnavailable("TMDB", err)
	}
	return media.NormalizeMovies(media.Objs(payload, "results"), mediaType), nil
}

func (s *Service) Trending(ctx context.Context, mediaType, window string) ([]media.Movie, error) {
	if !s.catalog.Configured() {
		return nil, httpx.NotConfigured("TMDB API", "TMDB_API_KEY")
	}
	mediaType, err := normalizeMediaType(mediaType)
	if err != nil {
		return nil, err
	}
	window = strings.ToLower(strings.TrimSpace(window))
	if window == "" {
		window = "week"
	}
	if !windows[window] {
		return nil, httpx.BadRequest("window must be day or week")
	}

	payload, err := s.catalog.Trending(ctx, mediaType, window)
	if err != nil {
		return nil, httpx.UpstreamUnavailable("TMDB", err)
	}
	return media.NormalizeMovies(media.Objs(payload, "results"), mediaType), nil
}

// Trailer returns the first YouTube video matching "<title> trailer".
func (s *Service) Trailer(ctx context.Context, title string) (Trailer, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Trailer{}, httpx.MissingParameter("q")
	}
	if s.videos == nil || !s.videos.Configured() {
		return Trailer{}, httpx.NotConfigured("YouTube API", "YOUTUBE_API_KEY")
	}

	query := title
	if !strings.Contains(strings.ToLower(title), "trailer") {
		query += " trailer"
	}
	payload, err := s.videos.SearchVideos(ctx, query, 1)
	if err != nil {
		return Trailer{}, httpx.UpstreamUnavailable("YouTube", err)
	}

	for _, item := range media.Objs(payload, "items") {
		id := media.Str(item, "id", "videoId")
		if id == "" {
			continue
		}
		return Trailer{VideoID: id, Title: media.Str(item, "snippet", "title"), URL: youtubeWatchURL + id}, nil
	}
	return Trailer{}, httpx.NotFound("No trailer found")
}
