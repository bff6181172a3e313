package handlers

import (
	"log"
	"net/http"

	"stadium-finder-service/internal/api/dto"
	"stadium-finder-service/internal/ports"
)

// FacilityHandler exposes read-only facility retrieval endpoints.
type FacilityHandler struct {
	Repo ports.FacilityRepository
}

func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	facilities, err := h.Repo.ListFacilities(r.Context())
	if err != nil {
		log.Printf("list facilities failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListFacilitiesResponse{
		Facilities: make([]dto.FacilityResponse, 0, len(facilities)),
	}
	for _, f := range facilities {
		res.Facilities = append(res.Facilities, dto.FacilityResponse{
			Name:          f.Name,
			EquipmentType: f.TypeName,
			Nature:        f.Nature,
			Surface:       f.Surface,
			Activity:      f.Activity,
			Transport:     f.Transport,
			Latitude:      f.Coord.Lat,
			Longitude:     f.Coord.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
