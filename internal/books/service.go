package books

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"reliva/internal/httpx"
	"reliva/internal/media"
	"reliva/internal/platform/upstream"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 40
)

type Service struct {
	volumes VolumeSource
	lists   ListSource
	logger  zerolog.Logger
}

func NewService(volumes VolumeSource, lists ListSource, logger zerolog.Logger) *Service {
	return &Service{volumes: volumes, lists: lists, logger: logger}
}

// Book resolves a volume by direct lookup, then by decoding id as a synthetic
// identifier and searching its title and author, and finally by synthesizing
// the volume from the decoded fields. At most two upstream calls are made.
func (s *Service) Book(ctx context.Context, id string) (media.Volume, error) {
	raw, err := s.volumes.Volume(ctx, id)
	if err == nil && media.Str(raw, "id") != "" && media.Str(raw, "volumeInfo", "title") != "" {
		return media.NormalizeVolume(raw), nil
	}
	if err != nil {
		s.logger.Debug().Err(err).Msg("direct volume lookup failed")
	}

	sid, decodeErr := DecodeSyntheticID(id)
	if decodeErr != nil {
		return media.Volume{}, httpx.InvalidIdentifier("Invalid book ID", decodeErr)
	}

	result, err := s.volumes.Search(ctx, sid.SearchTerms(), 1)
	if err != nil {
		s.logger.Debug().Err(err).Str("title", sid.Title).Msg("synthetic id search failed, synthesizing")
	}
	if items := media.Objs(result, "items"); len(items) > 0 {
		return media.NormalizeVolume(items[0]), nil
	}
	return sid.Volume(id), nil
}

func (q SearchQuery) terms() string {
	parts := make([]string, 0, 4)
	if v := strings.TrimSpace(q.Q); v != "" {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(q.ISBN); v != "" {
		parts = append(parts, "isbn:"+strings.ReplaceAll(v, "-", ""))
	}
	if v := strings.TrimSpace(q.Title); v != "" {
		parts = append(parts, "intitle:"+v)
	}
	if v := strings.TrimSpace(q.Author); v != "" {
		parts = append(parts, "inauthor:"+v)
	}
	return strings.Join(parts, " ")
}

func (s *Service) Search(ctx context.Context, q SearchQuery) (SearchResult, error) {
	terms := q.terms()
	if terms == "" {
		return SearchResult{}, httpx.MissingParameter("q, isbn, title or author")
	}
	limit := q.MaxResults
	if limit <= 0 {
		limit = defaultMaxResults
	}
	if limit > maxMaxResults {
		limit = maxMaxResults
	}

	payload, err := s.volumes.Search(ctx, terms, limit)
	if err != nil {
		return SearchResult{}, httpx.UpstreamUnavailable("Google Books", err)
	}

	items := media.Objs(payload, "items")
	out := SearchResult{TotalItems: media.Int(payload, "totalItems"), Items: make([]media.Book, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, media.NormalizeGoogleBook(item))
	}
	return out, nil
}

// BestSellers fetches every NYTimes list for publishedDate.
func (s *Service) BestSellers(ctx context.Context, publishedDate string) (BestSellers, error) {
	if s.lists == nil || !s.lists.Configured() {
		return BestSellers{}, httpx.NotConfigured("NYTimes API", "NYTIMES_API_KEY")
	}
	if publishedDate != "" {
		if _, err := time.Parse("2006-01-02", publishedDate); err != nil {
			return BestSellers{}, httpx.BadRequest("published_date must be formatted YYYY-MM-DD")
		}
	}

	payload, err := s.lists.Overview(ctx, publishedDate)
	if err != nil {
		return BestSellers{}, httpx.UpstreamUnavailable("NYTimes", err)
	}
	return normalizeOverview(payload), nil
}

func normalizeOverview(payload upstream.Payload) BestSellers {
	date := media.Str(payload, "results", "published_date")
	out := BestSellers{
		Status: media.Str(payload, "status"),
		Results: BestSellerResults{
			PublishedDate: date,
			Lists:         make([]BestSellerList, 0),
		},
	}

	for _, list := range media.Objs(payload, "results", "lists") {
		listID := media.Str(list, "list_id")
		listName := media.Str(list, "list_name")
		entries := media.Objs(list, "books")
		books := make([]media.Book, 0, len(entries))
		for _, entry := range entries {
			books = append(books, media.NormalizeNYTBook(entry, listID, listName, date))
		}
		out.Results.Lists = append(out.Results.Lists, BestSellerList{
			ListID:      listID,
			ListName:    listName,
			DisplayName: media.Str(list, "display_name"),
			Books:       books,
		})
	}
	return out
}
