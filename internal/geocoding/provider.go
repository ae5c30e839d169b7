package geocoding

import (
	"context"

	"github.com/UnknownOlympus/aether/internal/models"
)

// Provider is an interface that defines a method for geocoding a location query.
// The Geocode method takes a context and a parsed query as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, query Query) (*models.Coordinates, error)
}
