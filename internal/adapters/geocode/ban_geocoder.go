package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"stadium-finder-service/internal/domain"
	"stadium-finder-service/internal/platform/obs"
	"stadium-finder-service/internal/ports"
)

// GeocodeCache is a pluggable address -> coordinates cache consulted
// before the external API. A miss is reported via the bool, never as an
// error.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, address string, coord domain.Coordinates) error
}

// BANGeocoder implements ports.Geocoder using the French national
// address base (Base Adresse Nationale) hosted on data.geopf.fr.
//
// It coordinates:
//   - Address normalization
//   - Optional persistent geocode caching
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type BANGeocoder struct {
	session *http.Client
	baseURL string
	cache   GeocodeCache
}

// NewBANGeocoder returns a geocoder backed by data.geopf.fr. cache may
// be nil, in which case every lookup hits the API.
func NewBANGeocoder(cache GeocodeCache) *BANGeocoder {
	return &BANGeocoder{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: "https://data.geopf.fr/geocodage",
		cache:   cache,
	}
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *BANGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text address to coordinates. An empty feature
// list from the API is reported as ports.ErrAddressNotFound.
func (g *BANGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ban.Geocode")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w", ports.ErrAddressNotFound)
	}

	if g.cache != nil {
		coord, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode: cache lookup for %q: %w", norm, err)
		}
		if ok {
			return coord, nil
		}
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", norm)
		q.Set("limit", "1")
		q.Set("returntruegeometry", "false")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, ports.ErrAddressNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: invalid coordinate format", norm)
	}

	// GeoJSON order is [lon, lat].
	coord := domain.Coordinates{Lat: coords[1], Lon: coords[0]}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coord); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coord, nil
}
