package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blackhole/internal/blackhole"
)

type BlackHolePG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewBlackHolePG(db *pgxpool.Pool, timeout time.Duration) *BlackHolePG {
	return &BlackHolePG{db: db, timeout: timeout}
}

func (r *BlackHolePG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *BlackHolePG) List(ctx context.Context, q blackhole.Query) ([]blackhole.BlackHole, error) {
	const query = `
		SELECT id, name, distance_ly, mass_solar, description
		FROM blackholes
		ORDER BY id
		LIMIT $1 OFFSET $2`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(ctx, query, q.Limit, q.Offset)
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

func (r *BlackHolePG) GetByID(ctx context.Context, id int64) (blackhole.BlackHole, error) {
	const query = `
		SELECT id, name, distance_ly, mass_solar, description
		FROM blackholes
		WHERE id = $1`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b blackhole.BlackHole
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.DistanceLY, &b.MassSolar, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return blackhole.BlackHole{}, blackhole.ErrNotFound
		}
		return blackhole.BlackHole{}, err
	}
	return b, nil
}

func (r *BlackHolePG) Create(ctx context.Context, in blackhole.CreateInput) (blackhole.BlackHole, error) {
	const query = `
		INSERT INTO blackholes (name, distance_ly, mass_solar, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, distance_ly, mass_solar, description`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b blackhole.BlackHole
	err := r.db.QueryRow(ctx, query, in.Name, in.DistanceLY, in.MassSolar, in.Description).
		Scan(&b.ID, &b.Name, &b.DistanceLY, &b.MassSolar, &b.Description)
	if err != nil {
		return blackhole.BlackHole{}, fmt.Errorf("insert black hole: %w", err)
	}
	return b, nil
}

func (r *BlackHolePG) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM blackholes").Scan(&count)
	return count, err
}
