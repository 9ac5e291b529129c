package movies

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=movies

import (
	"context"
	"io"
	"net/url"
	"time"

	"reliva/internal/platform/upstream"
)

// Catalog is the TMDB adapter.
type Catalog interface {
	Configured() bool
	Proxy(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*upstream.Response, error)
	Search(ctx context.Context, mediaType, query string, page int) (upstream.Payload, error)
	Trending(ctx context.Context, mediaType, window string) (upstream.Payload, error)
}

// VideoSearcher is the YouTube adapter.
type VideoSearcher interface {
	Configured() bool
	SearchVideos(ctx context.Context, query string, maxResults int) (upstream.Payload, error)
}

// Cache stores proxy responses. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
