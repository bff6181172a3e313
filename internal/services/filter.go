package services

import (
	"slices"
	"strings"

	"stadium-finder-service/internal/domain"
)

// Criteria holds the optional attribute constraints of a search.
//
// A nil pointer (or empty Surfaces slice) means "no preference" for that
// field; set criteria combine with logical AND. Values are compared
// case-sensitively against the dataset's own vocabulary.
type Criteria struct {
	TypeName  *string
	Nature    *string
	Activity  *string
	Surfaces  []string // facility passes when its surface equals any entry
	Transport *string  // substring match against the transport descriptor
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return c.TypeName == nil && c.Nature == nil && c.Activity == nil &&
		len(c.Surfaces) == 0 && c.Transport == nil
}

// matches applies every set criterion to one facility.
func (c Criteria) matches(f domain.Facility) bool {
	if c.TypeName != nil && f.TypeName != *c.TypeName {
		return false
	}
	if c.Nature != nil && f.Nature != *c.Nature {
		return false
	}
	if c.Activity != nil && f.Activity != *c.Activity {
		return false
	}
	if len(c.Surfaces) > 0 && !slices.Contains(c.Surfaces, f.Surface) {
		return false
	}
	if c.Transport != nil {
		// Transport descriptors may list several modes ("Bus, Tramway"),
		// so matching is substring containment. An empty descriptor
		// (unserved facility) never matches.
		if f.Transport == "" || !strings.Contains(f.Transport, *c.Transport) {
			return false
		}
	}
	return true
}

// ApplyCriteria returns the facilities satisfying every set criterion,
// in their original order. The input slice is never mutated; with no
// criteria set it is returned unchanged.
func ApplyCriteria(facilities []domain.Facility, c Criteria) []domain.Facility {
	if c.Empty() {
		return facilities
	}

	filtered := make([]domain.Facility, 0, len(facilities))
	for _, f := range facilities {
		if c.matches(f) {
			filtered = append(filtered, f)
		}
	}

	return filtered
}
