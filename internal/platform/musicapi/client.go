// Package musicapi is the MusicAPI adapter used for cross-platform track
// previews. Calls authenticate with a bearer token from the token endpoint,
// cached in a TokenCache until shortly before it expires.
package musicapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"reliva/internal/platform/upstream"
)

const defaultTokenTTL = time.Hour

var ErrNoToken = errors.New("musicapi: token response carried no access token")

type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

type Client struct {
	http   *upstream.Client
	cfg    Config
	tokens *TokenCache
	now    func() time.Time
}

// NewClient builds a client around a shared token cache. A nil cache gets a private one.
func NewClient(cfg Config, tokens *TokenCache, client *upstream.Client) *Client {
	if tokens == nil {
		tokens = NewTokenCache()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{http: client, cfg: cfg, tokens: tokens, now: time.Now}
}

func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// Token returns a valid bearer token, fetching a new one when the cache is
// empty or within five minutes of expiry.
func (c *Client) Token(ctx context.Context) (string, error) {
	if tok, ok := c.tokens.Get(c.now()); ok {
		return tok, nil
	}

	payload, err := c.http.PostJSON(ctx, c.cfg.TokenURL, nil, map[string]string{
		"clientId":     c.cfg.ClientID,
		"clientSecret": c.cfg.ClientSecret,
		"grant_type":   "client_credentials",
	})
	if err != nil {
		return "", fmt.Errorf("musicapi: fetch token: %w", err)
	}

	value := stringField(payload, "accessToken", "access_token", "token")
	if value == "" {
		return "", ErrNoToken
	}
	ttl := defaultTokenTTL
	if secs := intField(payload, "expiresIn", "expires_in"); secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}

	c.tokens.Set(Token{Value: value, ExpiresAtEpochMs: c.now().Add(ttl).UnixMilli()})
	return value, nil
}

// Search looks a track up across the given streaming sources.
func (c *Client) Search(ctx context.Context, track, artist string, sources []string) (upstream.Payload, error) {
	tok, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		sources = []string{"spotify", "appleMusic", "deezer", "youtube"}
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+tok)
	return c.http.PostJSON(ctx, c.cfg.BaseURL+"/public/search", header, map[string]any{
		"track":   track,
		"artist":  artist,
		"type":    "track",
		"sources": sources,
	})
}

func stringField(p upstream.Payload, keys ...string) string {
	for _, k := range keys {
		if s, ok := p[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func intField(p upstream.Payload, keys ...string) int64 {
	for _, k := range keys {
		switch v := p[k].(type) {
		case float64:
			return int64(v)
		case string:
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}
