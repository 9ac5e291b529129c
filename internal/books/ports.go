package books

import (
	"context"

	"reliva/internal/platform/upstream"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=books

// VolumeSource is the Google Books API.
type VolumeSource interface {
	Volume(ctx context.Context, id string) (upstream.Payload, error)
	Search(ctx context.Context, q string, maxResults int) (upstream.Payload, error)
}

// ListSource is the NYTimes Books API.
type ListSource interface {
	Configured() bool
	Overview(ctx context.Context, publishedDate string) (upstream.Payload, error)
}
