package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"reliva/internal/config"
	"reliva/internal/logging"
	"reliva/internal/user"
)

type demoUser struct {
	profile user.Profile
	prefs   user.PreferencesInput
}

var demoUsers = []demoUser{
	{
		profile: user.Profile{ID: "demoAliceUID0000000000000001", Username: "alice_reads", DisplayName: "Alice", Bio: "Mostly literary fiction."},
		prefs:   user.PreferencesInput{MediaKinds: []string{"book", "movie"}, Genres: []string{"Literary Fiction", "Drama"}, Languages: []string{"en"}},
	},
	{
		profile: user.Profile{ID: "demoBobUID000000000000000002", Username: "bob_listens", DisplayName: "Bob", Bio: "Film scores and Tamil cinema."},
		prefs:   user.PreferencesInput{MediaKinds: []string{"music", "movie"}, Genres: []string{"Soundtrack"}, Languages: []string{"ta", "en"}},
	},
	{
		profile: user.Profile{ID: "demoCaraUID00000000000000003", Username: "cara_watches", DisplayName: "Cara", Bio: "Series marathons."},
		prefs:   user.PreferencesInput{MediaKinds: []string{"series"}, Genres: []string{"Thriller", "Sci-Fi"}, Languages: []string{"en", "de"}},
	},
}

// demoFollows are follower -> followee pairs by index into demoUsers.
var demoFollows = [][2]int{{0, 1}, {0, 2}, {1, 0}, {2, 1}}

func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "per-statement timeout")
	flag.Parse()

	logger := logging.New(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "console"})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if !cfg.DatabaseEnabled() {
		logger.Fatal().Msg("DATABASE_DSN is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	repo := user.NewPostgresRepo(pool, *timeout)
	if err := seed(ctx, repo, logger); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}
	logger.Info().Int("profiles", len(demoUsers)).Int("follows", len(demoFollows)).Msg("seed complete")
}

func seed(ctx context.Context, repo *user.PostgresRepo, logger zerolog.Logger) error {
	svc := user.NewService(repo, logger)

	for _, u := range demoUsers {
		if err := repo.CreateProfile(ctx, u.profile); err != nil {
			return err
		}
		if _, err := svc.SavePreferences(ctx, u.profile.ID, u.prefs); err != nil {
			return err
		}
	}

	for _, pair := range demoFollows {
		current, target := demoUsers[pair[0]].profile.ID, demoUsers[pair[1]].profile.ID
		if _, err := repo.Follow(ctx, current, target); err != nil && !errors.Is(err, user.ErrAlreadyFollowing) {
			return err
		}
	}
	return nil
}
