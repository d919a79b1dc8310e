package main

import (
	"os"
	"path/filepath"

	"blackhole/internal/store"
)

// migrationSource returns the embedded migrations for driver, or the
// on-disk directory named by MIGRATIONS_DIR when that is set.
func migrationSource(driver string) store.MigrationSource {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return store.MigrationSource{Dir: v}
	}
	return store.EmbeddedMigrations(driver)
}

// createDir is where "create" writes new migration files. Embedded
// migrations are read only, so it falls back to the source tree.
func createDir(driver string) string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("db", store.EmbeddedMigrations(driver).Dir)
}
