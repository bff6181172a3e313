package ports

import (
	"context"
	"stadium-finder-service/internal/domain"
)

// Port: a boundary for retrieving Facility records from a data source.
//
// Implementations must return facilities in a stable order (load order)
// and only rows whose coordinate pair parsed cleanly; the search core
// relies on both guarantees.
type FacilityRepository interface {
	// Retrieve all facilities available for searching.
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
}
