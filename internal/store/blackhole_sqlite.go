package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blackhole/internal/blackhole"
)

type BlackHoleSQLite struct {
	db      *sql.DB
	timeout time.Duration
}

func NewBlackHoleSQLite(db *sql.DB, timeout time.Duration) *BlackHoleSQLite {
	return &BlackHoleSQLite{db: db, timeout: timeout}
}

func (r *BlackHoleSQLite) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *BlackHoleSQLite) List(ctx context.Context, q blackhole.Query) ([]blackhole.BlackHole, error) {
	const query = `
		SELECT id, name, distance_ly, mass_solar, description
		FROM blackholes
		ORDER BY id
		LIMIT ? OFFSET ?`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []blackhole.BlackHole
	for rows.Next() {
		var b blackhole.BlackHole
		if err := rows.Scan(&b.ID, &b.Name, &b.DistanceLY, &b.MassSolar, &b.Description); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BlackHoleSQLite) GetByID(ctx context.Context, id int64) (blackhole.BlackHole, error) {
	const query = `
		SELECT id, name, distance_ly, mass_solar, description
		FROM blackholes
		WHERE id = ?`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b blackhole.BlackHole
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.DistanceLY, &b.MassSolar, &b.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blackhole.BlackHole{}, blackhole.ErrNotFound
		}
		return blackhole.BlackHole{}, err
	}
	return b, nil
}

func (r *BlackHoleSQLite) Create(ctx context.Context, in blackhole.CreateInput) (blackhole.BlackHole, error) {
	const query = `
		INSERT INTO blackholes (name, distance_ly, mass_solar, description)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, distance_ly, mass_solar, description`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b blackhole.BlackHole
	err := r.db.QueryRowContext(ctx, query, in.Name, in.DistanceLY, in.MassSolar, in.Description).
		Scan(&b.ID, &b.Name, &b.DistanceLY, &b.MassSolar, &b.Description)
	if err != nil {
		return blackhole.BlackHole{}, fmt.Errorf("insert black hole: %w", err)
	}
	return b, nil
}

func (r *BlackHoleSQLite) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blackholes").Scan(&count)
	return count, err
}
