package main

import (
	"github.com/rs/zerolog"

	"reliva/internal/books"
	"reliva/internal/config"
	"reliva/internal/movies"
	"reliva/internal/music"
	"reliva/internal/platform/googlebooks"
	"reliva/internal/platform/musicapi"
	"reliva/internal/platform/nytimes"
	"reliva/internal/platform/saavn"
	"reliva/internal/platform/spotify"
	"reliva/internal/platform/tmdb"
	"reliva/internal/platform/upstream"
	"reliva/internal/platform/youtube"
	"reliva/internal/user"
)

type handlers struct {
	music  *music.HTTPHandler
	books  *books.HTTPHandler
	movies *movies.HTTPHandler
	users  *user.HTTPHandler
}

// stores are the optional stateful collaborators. A nil field disables the
// feature that needs it.
type stores struct {
	users      user.Repository
	proxyCache movies.Cache
}

func upstreamClient(cfg *config.Config, provider string, logger zerolog.Logger) *upstream.Client {
	return upstream.NewClient(upstream.Options{
		Provider: provider,
		Timeout:  cfg.UpstreamTimeout,
		RPS:      cfg.UpstreamRPS,
		Logger:   logger,
	})
}

// buildHandlers wires one upstream client per provider. The MusicAPI token
// cache lives for the whole process and is shared by every request.
func buildHandlers(cfg *config.Config, st stores, logger zerolog.Logger) handlers {
	primary := saavn.NewClient(saavn.Primary, cfg.SaavnPrimaryURL, upstreamClient(cfg, "saavn.dev", logger))
	mirror := saavn.NewClient(saavn.Mirror, cfg.SaavnMirrorURL, upstreamClient(cfg, "saavn-mirror", logger))

	spotifyClient := spotify.NewClient(spotify.Config{
		BaseURL:      cfg.SpotifyURL,
		TokenURL:     cfg.SpotifyTokenURL,
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
	}, cfg.UpstreamTimeout, cfg.UpstreamRPS, logger)

	previews := musicapi.NewClient(musicapi.Config{
		BaseURL:      cfg.MusicAPIURL,
		TokenURL:     cfg.MusicAPITokenURL,
		ClientID:     cfg.MusicAPIClientID,
		ClientSecret: cfg.MusicAPIClientSecret,
	}, musicapi.NewTokenCache(), upstreamClient(cfg, "musicapi", logger))

	volumes := googlebooks.NewClient(cfg.GoogleBooksURL, cfg.GoogleBooksAPIKey, upstreamClient(cfg, "googlebooks", logger))
	lists := nytimes.NewClient(cfg.NYTimesURL, cfg.NYTimesAPIKey, upstreamClient(cfg, "nytimes", logger))

	catalog := tmdb.NewClient(cfg.TMDBURL, cfg.TMDBAPIKey, upstreamClient(cfg, "tmdb", logger))
	videos := youtube.NewClient(cfg.YouTubeURL, cfg.YouTubeAPIKey, upstreamClient(cfg, "youtube", logger))

	cache := st.proxyCache
	if cache == nil {
		cache = movies.NewMemoryCache(0)
	}

	return handlers{
		music:  music.NewHTTPHandler(music.NewService(primary, mirror, spotifyClient, previews, logger.With().Str("component", "music").Logger())),
		books:  books.NewHTTPHandler(books.NewService(volumes, lists, logger.With().Str("component", "books").Logger())),
		movies: movies.NewHTTPHandler(movies.NewService(catalog, videos, cache, logger.With().Str("component", "movies").Logger())),
		users:  user.NewHTTPHandler(user.NewService(st.users, logger.With().Str("component", "user").Logger())),
	}
}
