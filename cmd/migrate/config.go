package main

import (
	"errors"
	"os"

	"reliva/internal/config"
)

var errNoDSN = errors.New("DATABASE_DSN is not set")

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}

// databaseDSN resolves the profile store DSN through the shared configuration.
func databaseDSN() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if !cfg.DatabaseEnabled() {
		return "", errNoDSN
	}
	return cfg.DatabaseDSN, nil
}
