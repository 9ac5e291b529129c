package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("DATABASE_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "https://saavn.dev", cfg.SaavnPrimaryURL)
	assert.Equal(t, 12*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 10, cfg.UpstreamRPS)
	assert.Empty(t, cfg.TMDBAPIKey)
	assert.False(t, cfg.DatabaseEnabled())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("NYTIMES_API_KEY", "nyt-key")
	t.Setenv("MUSICAPI_CLIENT_ID", "music-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "spotify-secret")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost/reliva")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tmdb-key", cfg.TMDBAPIKey)
	assert.Equal(t, "nyt-key", cfg.NYTimesAPIKey)
	assert.Equal(t, "music-id", cfg.MusicAPIClientID)
	assert.Equal(t, "spotify-secret", cfg.SpotifyClientSecret)
	assert.True(t, cfg.DatabaseEnabled())
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestFromViper_InvalidNumbersFallBack(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("upstream.timeout", "0s")
	v.Set("upstream.rps", -1)

	cfg := FromViper(v)

	assert.Equal(t, 12*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 10, cfg.UpstreamRPS)
}
