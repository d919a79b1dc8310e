package blackhole

import (
	"errors"
)

// ErrNotFound is returned when a black hole does not exist.
var ErrNotFound = errors.New("black hole not found")

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// BlackHole is a catalog record. Optional fields are nil when unknown and
// encode as JSON null.
type BlackHole struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	DistanceLY  *float64 `json:"distance_ly"`
	MassSolar   *float64 `json:"mass_solar"`
	Description *string  `json:"description"`
}

// CreateInput is the payload accepted by POST /api/v1/blackholes.
type CreateInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	DistanceLY  *float64 `json:"distance_ly"`
	MassSolar   *float64 `json:"mass_solar"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
}

// Query defines pagination for listing black holes.
type Query struct {
	Limit  int
	Offset int
}
