package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"blackhole/db"
)

// MigrationSource points goose at a directory, inside FS when FS is set
// and on the local filesystem otherwise.
type MigrationSource struct {
	FS  fs.FS
	Dir string
}

// EmbeddedMigrations returns the migrations compiled in for driver.
func EmbeddedMigrations(driver string) MigrationSource {
	dir := "migrations/sqlite"
	if driver == DriverPostgres {
		dir = "migrations/postgres"
	}
	return MigrationSource{FS: db.Migrations, Dir: dir}
}

// gooseLogger sends goose output to zerolog instead of the stdlib log.
type gooseLogger struct {
	l *zerolog.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (d *DB) gooseDialect() string {
	if d.driver == DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

func (d *DB) sqlDB() (*sql.DB, func()) {
	if d.pool != nil {
		conn := stdlib.OpenDBFromPool(d.pool)
		return conn, func() { _ = conn.Close() }
	}
	return d.sql, func() {}
}

// Migrate runs a goose command (up, down, status) against the database.
func (d *DB) Migrate(ctx context.Context, command string, src MigrationSource) error {
	conn, release := d.sqlDB()
	defer release()

	goose.SetLogger(gooseLogger{l: zerolog.Ctx(ctx)})
	goose.SetBaseFS(src.FS)
	if err := goose.SetDialect(d.gooseDialect()); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, conn, src.Dir)
	case "down":
		return goose.DownContext(ctx, conn, src.Dir)
	case "status":
		return goose.StatusContext(ctx, conn, src.Dir)
	}
	return fmt.Errorf("unknown migration command: %s", command)
}
