package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")
	assert.Equal(t, "/custom/migrations", migrationsDir())
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	assert.Equal(t, "db/migrations", migrationsDir())
}

func TestDatabaseDSN_ExistingEnvWinsOverDotEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DATABASE_DSN=postgres://from-file/reliva\n"), 0o644))
	t.Setenv("DATABASE_DSN", "postgres://from-env/reliva")
	t.Chdir(tmp)

	dsn, err := databaseDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-env/reliva", dsn)
}

func TestDatabaseDSN_Missing(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Chdir(t.TempDir())

	_, err := databaseDSN()
	assert.ErrorIs(t, err, errNoDSN)
}
