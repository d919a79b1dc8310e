package main

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackhole/internal/store"
)

func TestEmbeddedMigrations_Parse(t *testing.T) {
	for _, driver := range []string{store.DriverPostgres, store.DriverSQLite} {
		src := store.EmbeddedMigrations(driver)

		goose.SetBaseFS(src.FS)
		migrations, err := goose.CollectMigrations(src.Dir, 0, goose.MaxVersion)
		goose.SetBaseFS(nil)

		require.NoError(t, err, driver)
		assert.NotEmpty(t, migrations, driver)
	}
}

func TestEmbeddedMigrations_HaveGooseDirectives(t *testing.T) {
	for _, driver := range []string{store.DriverPostgres, store.DriverSQLite} {
		src := store.EmbeddedMigrations(driver)

		entries, err := fs.ReadDir(src.FS, src.Dir)
		require.NoError(t, err)

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
				continue
			}
			b, err := fs.ReadFile(src.FS, src.Dir+"/"+e.Name())
			require.NoError(t, err)
			assert.Contains(t, string(b), "-- +goose Up", e.Name())
			assert.Contains(t, string(b), "-- +goose Down", e.Name())
		}
	}
}
