package services

import (
	"sort"

	"stadium-finder-service/internal/domain"
)

// RankByDistance annotates each facility with its distance from the
// reference point, drops those beyond radiusKm (distance <= radius is
// kept), sorts ascending by distance, and truncates to limit.
//
// The sort is stable: facilities at equal distance keep their original
// collection order. An empty result is a normal value, not an error.
func RankByDistance(
	facilities []domain.Facility,
	ref domain.Coordinates,
	radiusKm float64,
	limit int,
) []domain.RankedResult {
	coords := make([]domain.Coordinates, len(facilities))
	for i, f := range facilities {
		coords[i] = f.Coord
	}

	distances := DistancesKm(ref, coords)

	results := make([]domain.RankedResult, 0, len(facilities))
	for i, f := range facilities {
		if distances[i] <= radiusKm {
			results = append(results, domain.RankedResult{
				Facility:   f,
				DistanceKm: distances[i],
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}
