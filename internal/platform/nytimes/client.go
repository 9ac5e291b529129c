// Package nytimes is the NYTimes Books API adapter.
package nytimes

import (
	"context"
	"net/url"
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

// Overview fetches every best-seller list for publishedDate (YYYY-MM-DD).
// An empty date asks for the current lists.
func (c *Client) Overview(ctx context.Context, publishedDate string) (upstream.Payload, error) {
	q := url.Values{"api-key": {c.apiKey}}
	if publishedDate != "" {
		q.Set("published_date", publishedDate)
	}
	return c.http.GetJSON(ctx, c.baseURL+"/lists/overview.json?"+q.Encode(), nil)
}
