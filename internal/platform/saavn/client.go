// Package saavn talks to the two JioSaavn API deployments the music routes use:
// saavn.dev (primary) and the self-hosted mirror. They expose the same data
// behind different path layouts.
package saavn

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"reliva/internal/platform/upstream"
)

type Flavor int

const (
	Primary Flavor = iota
	Mirror
)

func (f Flavor) String() string {
	if f == Mirror {
		return "saavn-mirror"
	}
	return "saavn.dev"
}

type Client struct {
	http    *upstream.Client
	baseURL string
	flavor  Flavor
}

func NewClient(flavor Flavor, baseURL string, client *upstream.Client) *Client {
	return &Client{
		http:    client,
		baseURL: strings.TrimRight(baseURL, "/"),
		flavor:  flavor,
	}
}

func (c *Client) Name() string { return c.flavor.String() }

// endpoint picks the path for the client's flavor.
func (c *Client) endpoint(primaryPath, mirrorPath string, query url.Values) string {
	path := primaryPath
	if c.flavor == Mirror {
		path = mirrorPath
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// byID addresses a resource by path segment on saavn.dev and by ?id= on the mirror.
func (c *Client) byID(resource, id string) string {
	if c.flavor == Mirror {
		return c.endpoint("", "/"+resource, url.Values{"id": {id}})
	}
	return c.endpoint("/api/"+resource+"/"+url.PathEscape(id), "", nil)
}

func (c *Client) Artist(ctx context.Context, id string) (upstream.Payload, error) {
	return c.object(ctx, c.byID("artists", id))
}

func (c *Client) Song(ctx context.Context, id string) (upstream.Payload, error) {
	return c.object(ctx, c.byID("songs", id))
}

func (c *Client) Album(ctx context.Context, id string) (upstream.Payload, error) {
	return c.object(ctx, c.endpoint("/api/albums", "/albums", url.Values{"id": {id}}))
}

func (c *Client) SearchArtists(ctx context.Context, query string) ([]upstream.Payload, error) {
	return c.results(ctx, c.endpoint("/api/search/artists", "/search/artists", url.Values{"query": {query}}))
}

func (c *Client) SearchSongs(ctx context.Context, query string, limit int) ([]upstream.Payload, error) {
	q := url.Values{"query": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.results(ctx, c.endpoint("/api/search/songs", "/search/songs", q))
}

// object unwraps "data", taking the first element when data is an array.
// A payload flagged unsuccessful yields an empty object.
func (c *Client) object(ctx context.Context, u string) (upstream.Payload, error) {
	payload, err := c.http.GetJSON(ctx, u, nil)
	if err != nil {
		return nil, err
	}
	if failed(payload) {
		return upstream.Payload{}, nil
	}
	switch data := payload["data"].(type) {
	case map[string]any:
		return data, nil
	case []any:
		for _, item := range data {
			if m, ok := item.(map[string]any); ok {
				return m, nil
			}
		}
	}
	return upstream.Payload{}, nil
}

func (c *Client) results(ctx context.Context, u string) ([]upstream.Payload, error) {
	payload, err := c.http.GetJSON(ctx, u, nil)
	if err != nil {
		return nil, err
	}
	if failed(payload) {
		return []upstream.Payload{}, nil
	}

	var items []any
	switch data := payload["data"].(type) {
	case map[string]any:
		items, _ = data["results"].([]any)
	case []any:
		items = data
	}

	out := make([]upstream.Payload, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func failed(payload upstream.Payload) bool {
	if ok, present := payload["success"].(bool); present && !ok {
		return true
	}
	status, _ := payload["status"].(string)
	return strings.EqualFold(status, "FAILED")
}
