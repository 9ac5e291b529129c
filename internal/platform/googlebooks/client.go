// Package googlebooks is the Google Books volumes adapter. The API key is
// optional; without one requests run against the anonymous quota.
package googlebooks

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

func (c *Client) withKey(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	return q
}

// Volume fetches /volumes/{id}.
func (c *Client) Volume(ctx context.Context, id string) (upstream.Payload, error) {
	u := c.baseURL + "/volumes/" + url.PathEscape(id)
	if q := c.withKey(nil); len(q) > 0 {
		u += "?" + q.Encode()
	}
	return c.http.GetJSON(ctx, u, nil)
}

// Search runs a volumes query. q uses the Google query syntax, e.g. "intitle:x inauthor:y".
func (c *Client) Search(ctx context.Context, q string, maxResults int) (upstream.Payload, error) {
	query := url.Values{"q": {q}}
	if maxResults > 0 {
		query.Set("maxResults", strconv.Itoa(maxResults))
	}
	return c.http.GetJSON(ctx, c.baseURL+"/volumes?"+c.withKey(query).Encode(), nil)
}
