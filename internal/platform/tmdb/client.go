// Package tmdb is the TMDB v3 adapter: a raw passthrough used by the proxy
// route plus the typed search and trending calls.
package tmdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"reliva/internal/platform/upstream"
)

type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string, client *upstream.Client) *Client {
	return &Client{http: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

// URL builds the upstream URL for a relative TMDB path. The server's api_key
// replaces any key supplied by the caller.
func (c *Client) URL(rawPath string, query url.Values) (string, error) {
	clean := path.Clean("/" + strings.TrimLeft(rawPath, "/"))
	if clean == "/" {
		return "", fmt.Errorf("tmdb: empty path")
	}
	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("api_key", c.apiKey)
	return c.baseURL + clean + "?" + q.Encode(), nil
}

// Proxy forwards a request as-is and returns the upstream response for every status.
func (c *Client) Proxy(ctx context.Context, method, rawPath string, query url.Values, body io.Reader, contentType string) (*upstream.Response, error) {
	u, err := c.URL(rawPath, query)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.http.Do(ctx, req)
}

// Search queries /search/{mediaType}; mediaType is "movie" or "tv".
func (c *Client) Search(ctx context.Context, mediaType, query string, page int) (upstream.Payload, error) {
	q := url.Values{"query": {query}, "include_adult": {"false"}}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	u, err := c.URL("/search/"+mediaType, q)
	if err != nil {
		return nil, err
	}
	return c.http.GetJSON(ctx, u, nil)
}

// Trending queries /trending/{mediaType}/{window}; window is "day" or "week".
func (c *Client) Trending(ctx context.Context, mediaType, window string) (upstream.Payload, error) {
	u, err := c.URL("/trending/"+mediaType+"/"+window, nil)
	if err != nil {
		return nil, err
	}
	return c.http.GetJSON(ctx, u, nil)
}
