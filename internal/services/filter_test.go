package services

import (
	"testing"

	"stadium-finder-service/internal/domain"
)

func strptr(s string) *string { return &s }

func testFacilities() []domain.Facility {
	return []domain.Facility{
		{
			Name:      "Stade Municipal",
			TypeName:  "Terrain de football",
			Nature:    "Découvert",
			Surface:   "Gazon naturel",
			Activity:  "Football / Football en salle (Futsal)",
			Transport: "Bus, Tramway",
			Coord:     domain.Coordinates{Lat: 45.75, Lon: 4.85},
		},
		{
			Name:      "Gymnase des Lilas",
			TypeName:  "Terrain de futsal extérieur",
			Nature:    "Intérieur",
			Surface:   "Synthétique",
			Activity:  "Football / Football en salle (Futsal)",
			Transport: "Métro",
			Coord:     domain.Coordinates{Lat: 45.76, Lon: 4.84},
		},
		{
			Name:      "City-stade du Parc",
			TypeName:  "Multisports/City-stades",
			Nature:    "Découvert",
			Surface:   "Bitume",
			Activity:  "Football Américain / Flag",
			Transport: "",
			Coord:     domain.Coordinates{Lat: 45.77, Lon: 4.83},
		},
		{
			Name:      "Complexe de la Plaine",
			TypeName:  "Terrain de football",
			Nature:    "Découvert",
			Surface:   "Gazon synthétique",
			Activity:  "Football / Football en salle (Futsal)",
			Transport: "Bus",
			Coord:     domain.Coordinates{Lat: 45.78, Lon: 4.82},
		},
	}
}

func TestApplyCriteriaNoPreferenceReturnsInputUnchanged(t *testing.T) {
	facilities := testFacilities()

	out := ApplyCriteria(facilities, Criteria{})

	if len(out) != len(facilities) {
		t.Fatalf("expected %d facilities, got %d", len(facilities), len(out))
	}
	for i := range facilities {
		if out[i].Name != facilities[i].Name {
			t.Fatalf("order changed at index %d: got %q, want %q", i, out[i].Name, facilities[i].Name)
		}
	}
}

func TestApplyCriteriaExactMatch(t *testing.T) {
	facilities := testFacilities()

	out := ApplyCriteria(facilities, Criteria{TypeName: strptr("Terrain de football")})

	if len(out) != 2 {
		t.Fatalf("expected 2 facilities, got %d", len(out))
	}
	if out[0].Name != "Stade Municipal" || out[1].Name != "Complexe de la Plaine" {
		t.Fatalf("unexpected facilities: %q, %q", out[0].Name, out[1].Name)
	}
}

func TestApplyCriteriaExactMatchIsCaseSensitive(t *testing.T) {
	out := ApplyCriteria(testFacilities(), Criteria{TypeName: strptr("terrain de football")})
	if len(out) != 0 {
		t.Fatalf("expected no match for lowercased value, got %d", len(out))
	}
}

func TestApplyCriteriaTransportSubstring(t *testing.T) {
	facilities := testFacilities()

	out := ApplyCriteria(facilities, Criteria{Transport: strptr("Bus")})

	// "Bus, Tramway" and "Bus" contain "Bus"; "Métro" and the empty
	// descriptor do not.
	if len(out) != 2 {
		t.Fatalf("expected 2 facilities, got %d", len(out))
	}
	if out[0].Name != "Stade Municipal" || out[1].Name != "Complexe de la Plaine" {
		t.Fatalf("unexpected facilities: %q, %q", out[0].Name, out[1].Name)
	}
}

func TestApplyCriteriaTransportEmptyDescriptorNeverMatches(t *testing.T) {
	facilities := []domain.Facility{{Name: "Unserved", Transport: ""}}

	out := ApplyCriteria(facilities, Criteria{Transport: strptr("Bus")})
	if len(out) != 0 {
		t.Fatalf("facility with empty transport should not match, got %d", len(out))
	}
}

func TestApplyCriteriaSurfaceSet(t *testing.T) {
	facilities := testFacilities()

	out := ApplyCriteria(facilities, Criteria{Surfaces: []string{"Bitume", "Synthétique"}})

	if len(out) != 2 {
		t.Fatalf("expected 2 facilities, got %d", len(out))
	}
	if out[0].Name != "Gymnase des Lilas" || out[1].Name != "City-stade du Parc" {
		t.Fatalf("unexpected facilities: %q, %q", out[0].Name, out[1].Name)
	}
}

func TestApplyCriteriaSurfaceSetExcludesOtherSurfaces(t *testing.T) {
	facilities := []domain.Facility{{Name: "Synth pitch", Surface: "Gazon synthétique"}}

	out := ApplyCriteria(facilities, Criteria{Surfaces: []string{"Bitume"}})
	if len(out) != 0 {
		t.Fatalf("Gazon synthétique should not pass a Bitume-only criterion, got %d", len(out))
	}
}

func TestApplyCriteriaIsIntersection(t *testing.T) {
	facilities := testFacilities()

	combined := ApplyCriteria(facilities, Criteria{
		Nature:   strptr("Découvert"),
		Activity: strptr("Football / Football en salle (Futsal)"),
	})

	byNature := ApplyCriteria(facilities, Criteria{Nature: strptr("Découvert")})
	both := ApplyCriteria(byNature, Criteria{Activity: strptr("Football / Football en salle (Futsal)")})

	if len(combined) != len(both) {
		t.Fatalf("combined filter has %d entries, sequential filters have %d", len(combined), len(both))
	}
	for i := range combined {
		if combined[i].Name != both[i].Name {
			t.Fatalf("index %d: combined %q != sequential %q", i, combined[i].Name, both[i].Name)
		}
	}
}

func TestApplyCriteriaDoesNotMutateInput(t *testing.T) {
	facilities := testFacilities()
	names := make([]string, len(facilities))
	for i, f := range facilities {
		names[i] = f.Name
	}

	_ = ApplyCriteria(facilities, Criteria{Surfaces: []string{"Bitume"}})

	for i, f := range facilities {
		if f.Name != names[i] {
			t.Fatalf("input mutated at index %d", i)
		}
	}
}
