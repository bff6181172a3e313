package api

import (
	"net/http"

	"stadium-finder-service/internal/api/handlers"
	"stadium-finder-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.FacilityRepository, geocoder ports.Geocoder) http.Handler {
	mux := http.NewServeMux()

	facilityHandler := &handlers.FacilityHandler{Repo: repo}
	searchHandler := &handlers.SearchHandler{
		Repo:     repo,
		Geocoder: geocoder,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/facilities", facilityHandler.List)
	mux.HandleFunc("/search", searchHandler.Search)

	return loggingMiddleware(mux)
}
