package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"stadium-finder-service/internal/api/dto"
	"stadium-finder-service/internal/ports"
	"stadium-finder-service/internal/services"
)

type SearchHandler struct {
	Repo     ports.FacilityRepository
	Geocoder ports.Geocoder
}

// Search orchestrates the full facility search: geocode the supplied
// address, then filter, rank, and select facilities around it.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = 10
	}
	if radius <= 0 || radius > 50 {
		writeError(w, r, http.StatusBadRequest, "radius_km must be between 0 (exclusive) and 50")
		return
	}

	limit := req.MaxResults
	if limit == 0 {
		limit = 5
	}
	if limit < 1 || limit > 20 {
		writeError(w, r, http.StatusBadRequest, "max_results must be between 1 and 20")
		return
	}

	ref, err := h.Geocoder.Geocode(r.Context(), address)
	if err != nil {
		if errors.Is(err, ports.ErrAddressNotFound) {
			writeError(w, r, http.StatusUnprocessableEntity, "address not found")
			return
		}
		log.Printf("geocode failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "geocoding service unavailable")
		return
	}

	facilities, err := h.Repo.ListFacilities(r.Context())
	if err != nil {
		log.Printf("list facilities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	outcome, err := services.Search(facilities, services.SearchRequest{
		Reference: ref,
		Criteria: services.Criteria{
			TypeName:  req.EquipmentType,
			Nature:    req.Nature,
			Activity:  req.Activity,
			Surfaces:  req.Surfaces,
			Transport: req.Transport,
		},
		RadiusKm: radius,
		Limit:    limit,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuery) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("search failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SearchResponse{
		Reference:     dto.ReferencePoint{Latitude: ref.Lat, Longitude: ref.Lon},
		NoMatchReason: string(outcome.NoMatch),
		Results:       make([]dto.SearchResultResponse, 0, len(outcome.Results)),
	}
	for i, rr := range outcome.Results {
		res.Results = append(res.Results, dto.SearchResultResponse{
			Rank:          i + 1,
			DistanceKm:    rr.DistanceKm,
			DirectionsURL: directionsURL(ref.Lat, ref.Lon, rr.Facility.Coord.Lat, rr.Facility.Coord.Lon),
			FacilityResponse: dto.FacilityResponse{
				Name:          rr.Facility.Name,
				EquipmentType: rr.Facility.TypeName,
				Nature:        rr.Facility.Nature,
				Surface:       rr.Facility.Surface,
				Activity:      rr.Facility.Activity,
				Transport:     rr.Facility.Transport,
				Latitude:      rr.Facility.Coord.Lat,
				Longitude:     rr.Facility.Coord.Lon,
			},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// directionsURL builds a Google Maps navigation link from the reference
// point to a facility.
func directionsURL(fromLat, fromLon, toLat, toLon float64) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f&travelmode=driving",
		fromLat, fromLon, toLat, toLon,
	)
}
