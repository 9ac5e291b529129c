package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"reliva/internal/config"
	"reliva/internal/httpx"
)

const maxRequestBytes = 1 << 20

// readiness reports whether a stateful dependency is reachable.
type readiness func(ctx context.Context) error

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("GET /api/saavn/artist", h.music.Artist)
	mux.HandleFunc("GET /api/saavn/artist/similar", h.music.SimilarArtists)
	mux.HandleFunc("GET /api/saavn/artist/dob", h.music.ArtistDOB)
	mux.HandleFunc("GET /api/saavn/song", h.music.Song)
	mux.HandleFunc("GET /api/saavn/album", h.music.Album)
	mux.HandleFunc("GET /api/saavn/search", h.music.Search)
	mux.HandleFunc("GET /api/spotify/search", h.music.SpotifySearch)
	mux.HandleFunc("GET /api/musicapi/preview", h.music.Preview)

	mux.HandleFunc("GET /api/books/{id}", h.books.Get)
	mux.HandleFunc("GET /api/google-books", h.books.Search)
	mux.HandleFunc("GET /api/nytimes/books", h.books.BestSellers)

	mux.HandleFunc("GET /api/tmdb/proxy/{path...}", h.movies.Proxy)
	mux.HandleFunc("POST /api/tmdb/proxy/{path...}", h.movies.Proxy)
	mux.HandleFunc("GET /api/tmdb/search", h.movies.Search)
	mux.HandleFunc("GET /api/tmdb/trending", h.movies.Trending)
	mux.HandleFunc("GET /api/youtube/trailer", h.movies.Trailer)

	mux.HandleFunc("POST /api/users/follow", h.users.Follow)
	mux.HandleFunc("POST /api/validate-username", h.users.ValidateUsername)
	mux.HandleFunc("GET /api/users/{id}/preferences", h.users.GetPreferences)
	mux.HandleFunc("PUT /api/users/{id}/preferences", h.users.PutPreferences)
}

func registerOps(mux *http.ServeMux, checks map[string]readiness) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		for name, check := range checks {
			if err := check(ctx); err != nil {
				zerolog.Ctx(r.Context()).Warn().Err(err).Str("dependency", name).Msg("not ready")
				http.Error(w, name+" not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
}

func newRouter(cfg *config.Config, h handlers, checks map[string]readiness, limiter *httpx.RateLimitMiddleware, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	registerOps(mux, checks)
	registerRoutes(mux, h)

	middleware := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware(logger),
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	}
	if limiter != nil {
		middleware = append(middleware, limiter.Middleware)
	}
	return httpx.Chain(mux, middleware...)
}
