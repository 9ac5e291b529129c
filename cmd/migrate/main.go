package main

import (
	"context"
	"flag"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"reliva/internal/logging"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	logger := logging.New(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "console"})
	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			logger.Fatal().Msg("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logger.Fatal().Err(err).Msg("failed to create migration")
		}
		logger.Info().Str("name", *name).Msg("migration created")
		return
	}

	dsn, err := databaseDSN()
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot resolve database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal().Err(err).Msg("set goose dialect")
	}

	switch *command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
		logger.Info().Msg("migrations applied")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			logger.Fatal().Err(err).Msg("failed to roll back migration")
		}
		logger.Info().Msg("migration rolled back")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			logger.Fatal().Err(err).Msg("failed to check migration status")
		}
	default:
		logger.Fatal().Str("command", *command).Msg("unknown command, use: up, down, status, create")
	}
}
