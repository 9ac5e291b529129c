package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration. Provider credentials are optional:
// an empty value disables the provider and its routes answer "not configured".
type Config struct {
	ServerAddr     string
	EnableHSTS     bool
	DatabaseDSN    string
	RedisURL       string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	LogLevel       string
	LogFormat      string

	UpstreamTimeout time.Duration
	UpstreamRPS     int

	SaavnPrimaryURL string
	SaavnMirrorURL  string

	GoogleBooksURL    string
	GoogleBooksAPIKey string

	NYTimesURL    string
	NYTimesAPIKey string

	TMDBURL    string
	TMDBAPIKey string

	MusicAPIURL          string
	MusicAPITokenURL     string
	MusicAPIClientID     string
	MusicAPIClientSecret string

	SpotifyURL          string
	SpotifyTokenURL     string
	SpotifyClientID     string
	SpotifyClientSecret string

	YouTubeURL    string
	YouTubeAPIKey string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.hsts", false)
	v.SetDefault("database.dsn", "")
	v.SetDefault("redis.url", "")
	v.SetDefault("cors.allowed_origins", "http://localhost:3000")
	v.SetDefault("ratelimit.rps", 20)
	v.SetDefault("ratelimit.burst", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("upstream.timeout", "12s")
	v.SetDefault("upstream.rps", 10)

	v.SetDefault("saavn.primary_url", "https://saavn.dev")
	v.SetDefault("saavn.mirror_url", "https://jiosaavn-api-privatecvc2.vercel.app")

	v.SetDefault("googlebooks.url", "https://www.googleapis.com/books/v1")
	v.SetDefault("googlebooks.api_key", "")

	v.SetDefault("nytimes.url", "https://api.nytimes.com/svc/books/v3")
	v.SetDefault("nytimes.api_key", "")

	v.SetDefault("tmdb.url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.api_key", "")

	v.SetDefault("musicapi.url", "https://api.musicapi.com")
	v.SetDefault("musicapi.token_url", "https://api.musicapi.com/oauth/token")
	v.SetDefault("musicapi.client_id", "")
	v.SetDefault("musicapi.client_secret", "")

	v.SetDefault("spotify.url", "https://api.spotify.com/v1")
	v.SetDefault("spotify.token_url", "https://accounts.spotify.com/api/token")
	v.SetDefault("spotify.client_id", "")
	v.SetDefault("spotify.client_secret", "")

	v.SetDefault("youtube.url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.api_key", "")
}

// Load reads .env files, an optional config.yaml and the environment.
// Environment variables map from keys by upper-casing and replacing dots, so
// "tmdb.api_key" is read from TMDB_API_KEY.
func Load() (*Config, error) {
	// Existing environment wins over .env files.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	timeout := v.GetDuration("upstream.timeout")
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	rps := v.GetInt("upstream.rps")
	if rps <= 0 {
		rps = 10
	}

	return &Config{
		ServerAddr:     v.GetString("server.addr"),
		EnableHSTS:     v.GetBool("server.hsts"),
		DatabaseDSN:    v.GetString("database.dsn"),
		RedisURL:       v.GetString("redis.url"),
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		RateLimitRPS:   v.GetFloat64("ratelimit.rps"),
		RateLimitBurst: v.GetInt("ratelimit.burst"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),

		UpstreamTimeout: timeout,
		UpstreamRPS:     rps,

		SaavnPrimaryURL: v.GetString("saavn.primary_url"),
		SaavnMirrorURL:  v.GetString("saavn.mirror_url"),

		GoogleBooksURL:    v.GetString("googlebooks.url"),
		GoogleBooksAPIKey: v.GetString("googlebooks.api_key"),

		NYTimesURL:    v.GetString("nytimes.url"),
		NYTimesAPIKey: v.GetString("nytimes.api_key"),

		TMDBURL:    v.GetString("tmdb.url"),
		TMDBAPIKey: v.GetString("tmdb.api_key"),

		MusicAPIURL:          v.GetString("musicapi.url"),
		MusicAPITokenURL:     v.GetString("musicapi.token_url"),
		MusicAPIClientID:     v.GetString("musicapi.client_id"),
		MusicAPIClientSecret: v.GetString("musicapi.client_secret"),

		SpotifyURL:          v.GetString("spotify.url"),
		SpotifyTokenURL:     v.GetString("spotify.token_url"),
		SpotifyClientID:     v.GetString("spotify.client_id"),
		SpotifyClientSecret: v.GetString("spotify.client_secret"),

		YouTubeURL:    v.GetString("youtube.url"),
		YouTubeAPIKey: v.GetString("youtube.api_key"),
	}
}

// DatabaseEnabled reports whether the profile store is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.DatabaseDSN != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
