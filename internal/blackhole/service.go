package blackhole

import (
	"context"
	"fmt"
	"strings"
)

// Service provides black hole catalog logic.
type Service struct {
	repo Repository
}

// NewService creates a new black hole service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of black holes ordered by id.
func (s *Service) List(ctx context.Context, q Query) ([]BlackHole, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	items, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []BlackHole{}
	}
	return items, nil
}

// GetByID returns a black hole by its id.
func (s *Service) GetByID(ctx context.Context, id int64) (BlackHole, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new black hole.
func (s *Service) Create(ctx context.Context, in CreateInput) (BlackHole, error) {
	in.Name = strings.TrimSpace(in.Name)
	return s.repo.Create(ctx, in)
}

// Seed inserts the given records. With onlyIfEmpty set nothing is written
// when the catalog already holds at least one record. It returns the
// number of records inserted.
func (s *Service) Seed(ctx context.Context, seeds []CreateInput, onlyIfEmpty bool) (int, error) {
	if onlyIfEmpty {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count black holes: %w", err)
		}
		if n > 0 {
			return 0, nil
		}
	}

	inserted := 0
	for _, in := range seeds {
		if _, err := s.repo.Create(ctx, in); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", in.Name, err)
		}
		inserted++
	}
	return inserted, nil
}

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

// DefaultSeeds are the records a fresh catalog starts with.
func DefaultSeeds() []CreateInput {
	return []CreateInput{
		{
			Name:        "Стрелец A*",
			DistanceLY:  floatPtr(26000),
			MassSolar:   floatPtr(4.3e6),
			Description: stringPtr("Сверхмассивная ЧД в центре Млечного Пути."),
		},
		{
			Name:        "M87*",
			DistanceLY:  floatPtr(53000000),
			MassSolar:   floatPtr(6.5e9),
			Description: stringPtr("Первая тень ЧД, снятая EHT (2019)."),
		},
	}
}
