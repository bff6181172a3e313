package services

import (
	"errors"
	"fmt"

	"stadium-finder-service/internal/domain"
)

// ErrInvalidQuery reports a structurally invalid search request
// (non-positive radius or limit). It is a hard input-contract violation
// rejected before any computation.
var ErrInvalidQuery = errors.New("invalid query")

// NoMatchReason tags an empty search outcome so callers can distinguish
// "filters eliminated everything" from "nothing within radius" in user
// messaging.
type NoMatchReason string

const (
	NoMatchNone     NoMatchReason = ""
	NoMatchCriteria NoMatchReason = "no_criteria_match"
	NoMatchRadius   NoMatchReason = "out_of_radius"
)

// SearchRequest describes one search invocation. The reference point is
// expected to come from the geocoding collaborator; the core does not
// re-validate it.
type SearchRequest struct {
	Reference domain.Coordinates
	Criteria  Criteria
	RadiusKm  float64
	Limit     int
}

// SearchOutcome is either a non-empty ordered result list, or empty
// with a NoMatch reason. Absence of matches is a normal outcome, never
// an error.
type SearchOutcome struct {
	Results []domain.RankedResult
	NoMatch NoMatchReason
}

// Search runs the full pipeline: filter by attributes, compute
// distances, apply the radius cutoff, sort ascending, truncate to the
// result limit. The operation is pure and deterministic; repeated calls
// against an unchanged facility collection yield identical output.
func Search(facilities []domain.Facility, req SearchRequest) (SearchOutcome, error) {
	if req.RadiusKm <= 0 {
		return SearchOutcome{}, fmt.Errorf("search: radius must be positive, got %g: %w", req.RadiusKm, ErrInvalidQuery)
	}
	if req.Limit <= 0 {
		return SearchOutcome{}, fmt.Errorf("search: limit must be positive, got %d: %w", req.Limit, ErrInvalidQuery)
	}

	filtered := ApplyCriteria(facilities, req.Criteria)
	if len(filtered) == 0 {
		return SearchOutcome{NoMatch: NoMatchCriteria}, nil
	}

	results := RankByDistance(filtered, req.Reference, req.RadiusKm, req.Limit)
	if len(results) == 0 {
		return SearchOutcome{NoMatch: NoMatchRadius}, nil
	}

	return SearchOutcome{Results: results}, nil
}
