package geocode

import (
	"context"
	"fmt"

	"stadium-finder-service/internal/domain"
	"stadium-finder-service/internal/ports"
)

// MockGeocoder resolves addresses from a fixed map. Unknown addresses
// report ErrAddressNotFound, matching the real provider's contract.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(entries map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(entries))
	for addr, coord := range entries {
		m[addr] = coord
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	coord, ok := g.m[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	}

	return coord, nil
}
