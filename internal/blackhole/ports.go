package blackhole

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=blackhole

// Repository defines the contract for black hole storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]BlackHole, error)
	GetByID(ctx context.Context, id int64) (BlackHole, error)
	Create(ctx context.Context, in CreateInput) (BlackHole, error)
	Count(ctx context.Context) (int, error)
}
