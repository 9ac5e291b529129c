package music

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"reliva/internal/httpx"
	"reliva/internal/media"
	"reliva/internal/resolve"
)

const defaultSearchLimit = 20

var errNoAlias = errors.New("music: id is not a known alias")

// Service resolves music records across the primary JioSaavn API and its mirror.
type Service struct {
	primary  CatalogSource
	mirror   CatalogSource
	spotify  TrackSearcher
	previews PreviewSearcher
	logger   zerolog.Logger

	artists *resolve.Chain[media.Artist]
	live    *resolve.Chain[media.Artist]
	songs   *resolve.Chain[media.Track]
	albums  *resolve.Chain[media.Album]
	similar *resolve.Chain[[]media.ArtistStub]
	search  *resolve.Chain[[]media.Track]
}

func NewService(primary, mirror CatalogSource, spotify TrackSearcher, previews PreviewSearcher, logger zerolog.Logger) *Service {
	s := &Service{
		primary:  primary,
		mirror:   mirror,
		spotify:  spotify,
		previews: previews,
		logger:   logger,
	}

	hasName := func(a media.Artist) bool { return a.Name != "" }
	s.live = resolve.New(hasName, s.artistFrom(primary), s.artistFrom(mirror))
	s.artists = s.live.Then(resolve.Source[media.Artist]{
		Name:  "known-alias",
		Fetch: s.artistByAlias,
	})

	s.songs = resolve.New(func(t media.Track) bool { return t.Name != "" },
		s.songFrom(primary), s.songFrom(mirror))
	s.albums = resolve.New(func(a media.Album) bool { return a.Name != "" },
		s.albumFrom(primary), s.albumFrom(mirror))

	s.similar = resolve.New(func(stubs []media.ArtistStub) bool { return len(stubs) > 0 },
		s.similarFrom(primary), s.similarFrom(mirror), resolve.Source[[]media.ArtistStub]{
			Name: "seed",
			Fetch: func(_ context.Context, id string) ([]media.ArtistStub, error) {
				return seededSimilar(id), nil
			},
		})

	s.search = resolve.New(func(tracks []media.Track) bool { return len(tracks) > 0 },
		s.searchFrom(primary), s.searchFrom(mirror))
	return s
}

func (s *Service) artistFrom(src CatalogSource) resolve.Source[media.Artist] {
	return resolve.Source[media.Artist]{
		Name: src.Name(),
		Fetch: func(ctx context.Context, id string) (media.Artist, error) {
			raw, err := src.Artist(ctx, id)
			if err != nil {
				return media.Artist{}, err
			}
			return media.NormalizeArtist(raw), nil
		},
	}
}

// artistByAlias searches the primary provider by canonical name and returns the first hit.
func (s *Service) artistByAlias(ctx context.Context, id string) (media.Artist, error) {
	name, ok := knownAliases[id]
	if !ok {
		return media.Artist{}, errNoAlias
	}
	results, err := s.primary.SearchArtists(ctx, name)
	if err != nil {
		return media.Artist{}, err
	}
	if len(results) == 0 {
		return media.Artist{}, nil
	}
	return media.NormalizeArtist(results[0]), nil
}

func (s *Service) songFrom(src CatalogSource) resolve.Source[media.Track] {
	return resolve.Source[media.Track]{
		Name: src.Name(),
		Fetch: func(ctx context.Context, id string) (media.Track, error) {
			raw, err := src.Song(ctx, id)
			if err != nil {
				return media.Track{}, err
			}
			return media.NormalizeTrack(raw), nil
		},
	}
}

func (s *Service) albumFrom(src CatalogSource) resolve.Source[media.Album] {
	return resolve.Source[media.Album]{
		Name: src.Name(),
		Fetch: func(ctx context.Context, id string) (media.Album, error) {
			raw, err := src.Album(ctx, id)
			if err != nil {
				return media.Album{}, err
			}
			return media.NormalizeAlbum(raw), nil
		},
	}
}

func (s *Service) similarFrom(src CatalogSource) resolve.Source[[]media.ArtistStub] {
	return resolve.Source[[]media.ArtistStub]{
		Name: src.Name(),
		Fetch: func(ctx context.Context, id string) ([]media.ArtistStub, error) {
			raw, err := src.Artist(ctx, id)
			if err != nil {
				return nil, err
			}
			return media.NormalizeArtistStubs(media.Objs(raw, "similarArtists")), nil
		},
	}
}

func (s *Service) searchFrom(src CatalogSource) resolve.Source[[]media.Track] {
	return resolve.Source[[]media.Track]{
		Name: src.Name(),
		Fetch: func(ctx context.Context, query string) ([]media.Track, error) {
			raws, err := src.SearchSongs(ctx, query, defaultSearchLimit)
			if err != nil {
				return nil, err
			}
			return media.NormalizeTracks(raws), nil
		},
	}
}

// Artist resolves primary, then mirror, then the known-alias search. A
// resolved artist without similar artists gets the seeded set when one exists.
func (s *Service) Artist(ctx context.Context, id string) (media.Artist, error) {
	res, err := s.artists.Resolve(ctx, id)
	if err != nil {
		s.logger.Info().Str("artist_id", id).Err(err).Msg("artist not resolved")
		return media.Artist{}, httpx.NotFound("Artist not found")
	}

	artist := res.Value
	if len(artist.SimilarArtists) == 0 {
		if seeds := seededSimilar(id); seeds != nil {
			artist.SimilarArtists = seeds
		}
	}
	return artist, nil
}

// SimilarArtists never fails: exhausting every source yields an empty list.
func (s *Service) SimilarArtists(ctx context.Context, id string) []media.ArtistStub {
	res, err := s.similar.Resolve(ctx, id)
	if err != nil {
		return []media.ArtistStub{}
	}
	return res.Value
}

func (s *Service) ArtistDOB(ctx context.Context, id string) (DOB, error) {
	res, err := s.live.Resolve(ctx, id)
	if err != nil {
		var exhausted *resolve.ExhaustedError
		if errors.As(err, &exhausted) && exhausted.Unavailable() {
			return DOB{}, httpx.UpstreamUnavailable("JioSaavn", err)
		}
		return DOB{}, httpx.NotFound("Artist not found")
	}

	artist := res.Value
	return DOB{
		ID:      firstNonEmpty(artist.ID, id),
		Name:    artist.Name,
		DOB:     artist.DOB,
		IsValid: media.ValidDate(artist.DOB),
	}, nil
}

func (s *Service) Song(ctx context.Context, id string) (media.Track, error) {
	res, err := s.songs.Resolve(ctx, id)
	if err != nil {
		return media.Track{}, notFoundOrUnavailable(err, "Song not found")
	}
	return res.Value, nil
}

func (s *Service) Album(ctx context.Context, id string) (media.Album, error) {
	res, err := s.albums.Resolve(ctx, id)
	if err != nil {
		return media.Album{}, notFoundOrUnavailable(err, "Album not found")
	}
	return res.Value, nil
}

// SearchSongs asks the mirror when the primary fails or finds nothing. An empty
// list is a success; only transport failure of both deployments is an error.
func (s *Service) SearchSongs(ctx context.Context, query string) ([]media.Track, error) {
	res, err := s.search.Resolve(ctx, query)
	if err != nil {
		var exhausted *resolve.ExhaustedError
		if errors.As(err, &exhausted) && !exhausted.Unavailable() {
			return []media.Track{}, nil
		}
		return nil, httpx.UpstreamUnavailable("JioSaavn", err)
	}
	return res.Value, nil
}

func (s *Service) SpotifySearch(ctx context.Context, query string, limit int) ([]media.Track, error) {
	if s.spotify == nil || !s.spotify.Configured() {
		return nil, httpx.NotConfigured("Spotify API", "SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	}
	raws, err := s.spotify.SearchTracks(ctx, query, limit)
	if err != nil {
		return nil, httpx.UpstreamUnavailable("Spotify", err)
	}
	tracks := make([]media.Track, 0, len(raws))
	for _, raw := range raws {
		tracks = append(tracks, media.NormalizeSpotifyTrack(raw))
	}
	return tracks, nil
}

// Preview returns the first source that carries a preview clip.
func (s *Service) Preview(ctx context.Context, track, artist string) (Preview, error) {
	if s.previews == nil || !s.previews.Configured() {
		return Preview{}, httpx.NotConfigured("MusicAPI", "MUSICAPI_CLIENT_ID and MUSICAPI_CLIENT_SECRET")
	}
	payload, err := s.previews.Search(ctx, track, artist, nil)
	if err != nil {
		return Preview{}, httpx.UpstreamUnavailable("MusicAPI", err)
	}

	for _, tuple := range media.Objs(payload, "tuples") {
		data := media.Obj(tuple, "data")
		if u := media.Str(data, "previewUrl"); u != "" {
			return Preview{
				PreviewURL: u,
				Source:     firstNonEmpty(media.Str(tuple, "source"), media.Str(data, "source")),
				Name:       media.Str(data, "name"),
				URL:        media.Str(data, "url"),
			}, nil
		}
	}
	return Preview{}, httpx.NotFound("No preview available for this track")
}

func notFoundOrUnavailable(err error, message string) error {
	var exhausted *resolve.ExhaustedError
	if errors.As(err, &exhausted) && exhausted.Unavailable() {
		return httpx.UpstreamUnavailable("JioSaavn", err)
	}
	return httpx.NotFound(message)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
