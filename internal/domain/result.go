package domain

// A Facility paired with its computed great-circle distance from the
// search reference point. RankedResults are derived per query, ordered
// by ascending distance, and never stored.
type RankedResult struct {
	Facility   Facility
	DistanceKm float64
}
