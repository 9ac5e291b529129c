// Package spotify is the Spotify Web API adapter. It authenticates with the
// client-credentials grant; golang.org/x/oauth2 caches and renews the app token.
package spotify

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"
	oauthspotify "golang.org/x/oauth2/spotify"

	"reliva/internal/platform/upstream"
)

type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

type Client struct {
	http       *upstream.Client
	baseURL    string
	configured bool
}

// NewClient wraps the oauth2 transport in an upstream client. A token fetch
// failure surfaces as a transport error of the API call.
func NewClient(cfg Config, timeout time.Duration, rps int, logger zerolog.Logger) *Client {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = oauthspotify.Endpoint.TokenURL
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
	}
	httpClient := cc.Client(context.Background())
	httpClient.Timeout = timeout

	return &Client{
		http: upstream.NewClient(upstream.Options{
			Provider:   "spotify",
			Timeout:    timeout,
			RPS:        rps,
			HTTPClient: httpClient,
			Logger:     logger,
		}),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		configured: cfg.ClientID != "" && cfg.ClientSecret != "",
	}
}

func (c *Client) Configured() bool { return c.configured }

// SearchTracks returns the raw track objects of a /search?type=track call.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]map[string]any, error) {
	q := url.Values{"q": {query}, "type": {"track"}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	payload, err := c.http.GetJSON(ctx, c.baseURL+"/search?"+q.Encode(), http.Header{})
	if err != nil {
		return nil, err
	}

	tracks, _ := payload["tracks"].(map[string]any)
	items, _ := tracks["items"].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, nil
}
