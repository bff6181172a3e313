package ports

import (
	"context"
	"errors"
	"stadium-finder-service/internal/domain"
)

// ErrAddressNotFound reports that the geocoding service returned no
// result for an address. It is an expected outcome, not a transport
// failure; callers should surface it to the user rather than retry.
var ErrAddressNotFound = errors.New("address not found")

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Resolve an address to a coordinate pair. Returns a wrapped
	// ErrAddressNotFound when the service has no match.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
