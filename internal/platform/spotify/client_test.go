package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTracks_AuthenticatesOnce(t *testing.T) {
	var tokenCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"app-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /v1/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`{"tracks":{"items":[{"id":"1","name":"Jai Ho"},{"id":"2","name":"Roja"}]}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(Config{
		BaseURL:      srv.URL + "/v1",
		TokenURL:     srv.URL + "/api/token",
		ClientID:     "id",
		ClientSecret: "secret",
	}, 2*time.Second, 0, zerolog.Nop())
	require.True(t, c.Configured())

	for i := 0; i < 2; i++ {
		tracks, err := c.SearchTracks(context.Background(), "jai ho", 10)
		require.NoError(t, err)
		assert.Len(t, tracks, 2)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestSearchTracks_TokenFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, TokenURL: srv.URL + "/token", ClientID: "id", ClientSecret: "bad"}, time.Second, 0, zerolog.Nop())
	_, err := c.SearchTracks(context.Background(), "x", 1)
	assert.Error(t, err)
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient(Config{}, time.Second, 0, zerolog.Nop()).Configured())
}
