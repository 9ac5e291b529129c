package music

import (
	"context"

	"reliva/internal/platform/upstream"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=music

// CatalogSource is one JioSaavn deployment. Payloads are the unwrapped "data" objects.
type CatalogSource interface {
	Name() string
	Artist(ctx context.Context, id string) (upstream.Payload, error)
	Song(ctx context.Context, id string) (upstream.Payload, error)
	Album(ctx context.Context, id string) (upstream.Payload, error)
	SearchArtists(ctx context.Context, query string) ([]upstream.Payload, error)
	SearchSongs(ctx context.Context, query string, limit int) ([]upstream.Payload, error)
}

// TrackSearcher is the Spotify track search.
type TrackSearcher interface {
	Configured() bool
	SearchTracks(ctx context.Context, query string, limit int) ([]map[string]any, error)
}

// PreviewSearcher is the MusicAPI cross-platform search.
type PreviewSearcher interface {
	Configured() bool
	Search(ctx context.Context, track, artist string, sources []string) (upstream.Payload, error)
}
