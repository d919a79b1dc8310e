// Package db carries the SQL migrations compiled into the binaries.
package db

import "embed"

// Migrations holds one goose migration directory per SQL dialect.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS
