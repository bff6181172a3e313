package services

import (
	"math"
	"stadium-finder-service/internal/domain"
)

// Mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// DistanceKm computes the great-circle distance in kilometers between
// two points using the haversine formula. Coordinates are assumed to be
// valid decimal degrees; out-of-range values pass through the numeric
// computation unchecked.
func DistanceKm(a, b domain.Coordinates) float64 {
	latA := degreesToRadians(a.Lat)
	latB := degreesToRadians(b.Lat)
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistancesKm computes the distance from one reference point to every
// candidate. The reference terms are converted once so the per-candidate
// work is a single haversine evaluation; the result is mathematically
// identical to calling DistanceKm per pair.
func DistancesKm(ref domain.Coordinates, points []domain.Coordinates) []float64 {
	refLat := degreesToRadians(ref.Lat)
	refLon := degreesToRadians(ref.Lon)
	cosRefLat := math.Cos(refLat)

	out := make([]float64, len(points))
	for i, p := range points {
		lat := degreesToRadians(p.Lat)
		lon := degreesToRadians(p.Lon)
		dLat := lat - refLat
		dLon := lon - refLon

		h := math.Sin(dLat/2)*math.Sin(dLat/2) +
			cosRefLat*math.Cos(lat)*
				math.Sin(dLon/2)*math.Sin(dLon/2)

		out[i] = earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	}

	return out
}
