// Package youtube is the YouTube Data API v3 adapter used for trailer lookup.
package youtube

import (
	"context"
	"net/url"
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

// SearchVideos runs /search restricted to videos.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) (upstream.Payload, error) {
	if maxResults <= 0 {
		maxResults = 1
	}
	q := url.Values{
		"part":       {"snippet"},
		"type":       {"video"},
		"q":          {query},
		"maxResults": {strconv.Itoa(maxResults)},
		"key":        {c.apiKey},
	}
	return c.http.GetJSON(ctx, c.baseURL+"/search?"+q.Encode(), nil)
}
