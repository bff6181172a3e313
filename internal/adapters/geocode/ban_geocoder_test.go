package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"stadium-finder-service/internal/domain"
	"stadium-finder-service/internal/ports"
)

func newTestGeocoder(handler http.HandlerFunc, cache GeocodeCache) (*BANGeocoder, *httptest.Server) {
	srv := httptest.NewServer(handler)
	g := NewBANGeocoder(cache)
	g.baseURL = srv.URL
	return g, srv
}

func featureJSON(lat, lon float64) string {
	// GeoJSON coordinate order is [lon, lat].
	return fmt.Sprintf(`{"features": [{"geometry": {"coordinates": [%g, %g]}}]}`, lon, lat)
}

func TestBANGeocoderResolvesAddress(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "10 rue de la Paix, Paris" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q", got)
		}
		fmt.Fprint(w, featureJSON(48.8692, 2.3316))
	}, nil)
	defer srv.Close()

	coord, err := g.Geocode(context.Background(), "10 rue de la Paix,   Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coord.Lat != 48.8692 || coord.Lon != 2.3316 {
		t.Fatalf("got %+v, want lat=48.8692 lon=2.3316", coord)
	}
}

func TestBANGeocoderNotFound(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features": []}`)
	}, nil)
	defer srv.Close()

	_, err := g.Geocode(context.Background(), "complete gibberish")
	if !errors.Is(err, ports.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestBANGeocoderEmptyAddressNotFound(t *testing.T) {
	g := NewBANGeocoder(nil)

	_, err := g.Geocode(context.Background(), "   ")
	if !errors.Is(err, ports.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestBANGeocoderRetriesServerErrors(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, featureJSON(45.7578, 4.8320))
	}, nil)
	defer srv.Close()

	coord, err := g.Geocode(context.Background(), "Place Bellecour, Lyon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coord.Lat != 45.7578 {
		t.Fatalf("got %+v", coord)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

type memCache struct {
	m    map[string]domain.Coordinates
	puts int
}

func (c *memCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	coord, ok := c.m[address]
	return coord, ok, nil
}

func (c *memCache) Put(ctx context.Context, address string, coord domain.Coordinates) error {
	c.m[address] = coord
	c.puts++
	return nil
}

func TestBANGeocoderUsesCache(t *testing.T) {
	calls := 0
	cache := &memCache{m: map[string]domain.Coordinates{}}

	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, featureJSON(45.7578, 4.8320))
	}, cache)
	defer srv.Close()

	ctx := context.Background()

	if _, err := g.Geocode(ctx, "Place Bellecour, Lyon"); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if _, err := g.Geocode(ctx, "Place Bellecour, Lyon"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected 1 API call, got %d", calls)
	}
	if cache.puts != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.puts)
	}
}
