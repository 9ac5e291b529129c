package main

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliva/internal/config"
	"reliva/internal/logging"
	"reliva/internal/testutil"
)

func testRouter(t *testing.T, checks map[string]readiness) http.Handler {
	t.Helper()
	cfg := &config.Config{
		AllowedOrigins:  []string{"http://localhost:3000"},
		UpstreamTimeout: time.Second,
		UpstreamRPS:     10,
	}
	logger := logging.Nop()
	return newRouter(cfg, buildHandlers(cfg, stores{}, logger), checks, nil, logger)
}

func serve(h http.Handler, method, target, body string) testutil.RecordResponse {
	var payload any
	if body != "" {
		payload = body
	}
	return testutil.Serve(h, testutil.NewRequest(method, target, payload))
}

func TestRouting_Ops(t *testing.T) {
	h := testRouter(t, nil)

	w := serve(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header.Get("X-Request-Id"))

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/metrics", "").Code)
}

func TestRouting_ReadyzReportsFailingDependency(t *testing.T) {
	h := testRouter(t, map[string]readiness{
		"database": func(context.Context) error { return errors.New("connection refused") },
	})

	w := serve(h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Raw, "database not ready")
}

func TestRouting_MethodMismatch(t *testing.T) {
	h := testRouter(t, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, http.MethodGet, "/api/users/follow", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(h, http.MethodDelete, "/api/tmdb/proxy/movie/550", "").Code)
}

func TestRouting_MissingCredentialsAnswerNotConfigured(t *testing.T) {
	h := testRouter(t, nil)

	cases := []struct {
		method, target, body, setting string
	}{
		{http.MethodGet, "/api/tmdb/proxy/movie/550", "", "TMDB_API_KEY"},
		{http.MethodGet, "/api/tmdb/trending", "", "TMDB_API_KEY"},
		{http.MethodGet, "/api/nytimes/books", "", "NYTIMES_API_KEY"},
		{http.MethodGet, "/api/youtube/trailer?q=Dune", "", "YOUTUBE_API_KEY"},
		{http.MethodGet, "/api/spotify/search?q=Roja", "", "SPOTIFY_CLIENT_ID"},
		{http.MethodGet, "/api/musicapi/preview?track=Roja", "", "MUSICAPI_CLIENT_ID"},
		{http.MethodPost, "/api/validate-username", `{"username":"valid_user1"}`, "DATABASE_DSN"},
	}
	for _, c := range cases {
		w := serve(h, c.method, c.target, c.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, c.target)
		assert.Contains(t, w.Raw, "NOT_CONFIGURED", c.target)
		assert.Contains(t, w.Raw, c.setting, c.target)
	}
}

func TestRouting_BadRequests(t *testing.T) {
	h := testRouter(t, nil)

	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/api/saavn/artist", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/api/google-books", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/api/users/123/preferences", "").Code)

	w := serve(h, http.MethodPost, "/api/validate-username", `{"username":"ab"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":false,"message":"Username must be between 3 and 20 characters"}`, w.Raw)
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/reliva", redactDSN("postgres://user:secret@db:5432/reliva"))
	assert.Equal(t, "postgres://db/reliva", redactDSN("postgres://db/reliva"))
}
