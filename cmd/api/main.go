package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"reliva/internal/config"
	"reliva/internal/httpx"
	"reliva/internal/logging"
	"reliva/internal/movies"
	"reliva/internal/user"
)

const dbTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logging.New(logging.Config{})
		l.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st stores
	checks := map[string]readiness{}

	if cfg.DatabaseEnabled() {
		pool, err := openDB(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		st.users = user.NewPostgresRepo(pool, dbTimeout)
		checks["database"] = pool.Ping
	} else {
		logger.Warn().Msg("DATABASE_DSN not set, user routes answer not configured")
	}

	if cfg.RedisURL != "" {
		cache, err := movies.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = cache.Close() }()
		st.proxyCache = cache
		checks["redis"] = cache.Ping
	}

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	router := newRouter(cfg, buildHandlers(cfg, st, logger), checks, limiter, logger)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openDB(ctx context.Context, dsn string, logger zerolog.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Error().Str("dsn", redactDSN(dsn)).Msg("cannot ping database")
		return nil, err
	}
	logger.Info().Msg("database connection OK")
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
