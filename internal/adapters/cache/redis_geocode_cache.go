package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stadium-finder-service/internal/domain"
	"stadium-finder-service/internal/platform/obs"
)

const redisGeocodeKeyPrefix = "geocode:"

// RedisGeocodeCache is a Redis-backed cache mapping addresses to
// coordinates. Values are stored as "lat, lon" strings, the same pair
// format the facility dataset uses for its coordinate column.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration // zero means no expiry
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached coordinates for an address. A missing key is a cache
// miss, not an error.
func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.redis.Get")(&err)

	if c.Client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: address must not be empty")
	}

	val, err := c.Client.Get(ctx, redisGeocodeKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get %q: %w", address, err)
	}

	coord, err := parseCoordinatePair(val)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: value for %q: %w", address, err)
	}

	return coord, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (c *RedisGeocodeCache) Put(ctx context.Context, address string, coord domain.Coordinates) error {
	if c.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	val := strconv.FormatFloat(coord.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(coord.Lon, 'f', -1, 64)

	if err := c.Client.Set(ctx, redisGeocodeKeyPrefix+address, val, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}

// parseCoordinatePair splits a "lat, lon" string into coordinates.
func parseCoordinatePair(s string) (domain.Coordinates, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return domain.Coordinates{}, fmt.Errorf("malformed coordinate pair %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse latitude in %q: %w", s, err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse longitude in %q: %w", s, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
