package musicapi

import (
	"sync/atomic"
	"time"
)

// refreshMargin is how long before expiry a cached token is treated as stale.
const refreshMargin = 5 * time.Minute

// Token is a bearer token and its absolute expiry.
type Token struct {
	Value            string
	ExpiresAtEpochMs int64
}

// TokenCache holds the process-wide MusicAPI bearer token. It is shared by
// injecting the same *TokenCache into every client.
//
// Reads and writes are not serialized: concurrent requests that find the token
// stale each fetch a new one and the last write wins. Redundant refreshes are
// accepted; the pointer swap only keeps each read consistent.
type TokenCache struct {
	current atomic.Pointer[Token]
}

func NewTokenCache() *TokenCache {
	return &TokenCache{}
}

// Get returns the cached token if it is present and not within refreshMargin of expiry.
func (c *TokenCache) Get(now time.Time) (string, bool) {
	tok := c.current.Load()
	if tok == nil || tok.Value == "" {
		return "", false
	}
	if now.Add(refreshMargin).UnixMilli() >= tok.ExpiresAtEpochMs {
		return "", false
	}
	return tok.Value, true
}

func (c *TokenCache) Set(tok Token) {
	c.current.Store(&tok)
}

// Snapshot returns the stored token, stale or not.
func (c *TokenCache) Snapshot() (Token, bool) {
	tok := c.current.Load()
	if tok == nil {
		return Token{}, false
	}
	return *tok, true
}
