package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"blackhole/internal/blackhole"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// DB is an open catalog database, either a pgx pool or a SQLite handle.
type DB struct {
	driver  string
	pool    *pgxpool.Pool
	sql     *sql.DB
	timeout time.Duration
}

// Open connects to the database named by rawURL and pings it. Postgres
// URLs use pgx; sqlite:// and file: URLs use the pure Go SQLite driver.
func Open(ctx context.Context, rawURL string, timeout time.Duration) (*DB, error) {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		pool, err := pgxpool.New(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("create db pool: %w", err)
		}
		d := &DB{driver: DriverPostgres, pool: pool, timeout: timeout}
		if err := d.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return d, nil

	case strings.HasPrefix(rawURL, "sqlite://"), strings.HasPrefix(rawURL, "file:"):
		dsn, err := sqliteDSN(rawURL)
		if err != nil {
			return nil, err
		}
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// One connection keeps :memory: databases shared and serializes writers.
		conn.SetMaxOpenConns(1)
		d := &DB{driver: DriverSQLite, sql: conn, timeout: timeout}
		if err := d.Ping(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return d, nil
	}

	return nil, fmt.Errorf("unsupported database url scheme: %q", rawURL)
}

func sqliteDSN(rawURL string) (string, error) {
	path := rawURL
	if strings.HasPrefix(rawURL, "sqlite://") {
		path = strings.TrimPrefix(strings.TrimPrefix(rawURL, "sqlite://"), "/")
	}
	if path == "" {
		return "", errors.New("sqlite url has no path")
	}

	file := strings.TrimPrefix(strings.SplitN(path, "?", 2)[0], "file:")
	if file != ":memory:" && file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return "", fmt.Errorf("create database directory: %w", err)
		}
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", nil
}

func (d *DB) Driver() string { return d.driver }

func (d *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.timeout)
}

func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	return d.sql.PingContext(ctx)
}

// SelectOne runs SELECT 1, the cheapest end to end query check.
func (d *DB) SelectOne(ctx context.Context) (int, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var one int
	var err error
	if d.pool != nil {
		err = d.pool.QueryRow(ctx, "SELECT 1").Scan(&one)
	} else {
		err = d.sql.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	}
	return one, err
}

// BlackHoles returns the catalog repository backed by this database.
func (d *DB) BlackHoles() blackhole.Repository {
	if d.pool != nil {
		return NewBlackHolePG(d.pool, d.timeout)
	}
	return NewBlackHoleSQLite(d.sql, d.timeout)
}

func (d *DB) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.sql != nil {
		_ = d.sql.Close()
	}
}
