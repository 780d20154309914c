package geocache

import (
	"context"
	"encoding/json"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores every entry as a field of a single Redis hash.
// HSET is atomic per field, so concurrent Puts never overwrite unrelated keys.
type RedisCache struct {
	client  *redis.Client
	hashKey string
}

var _ repository.GeocodeCache = (*RedisCache)(nil)

// NewRedisCache creates a cache backed by the hash hashKey.
func NewRedisCache(client *redis.Client, hashKey string) *RedisCache {
	return &RedisCache{client: client, hashKey: hashKey}
}

// Get returns the cached coordinate for key.
func (c *RedisCache) Get(ctx context.Context, key string) (entity.Coordinate, bool, error) {
	raw, err := c.client.HGet(ctx, c.hashKey, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Coordinate{}, false, nil
		}

		return entity.Coordinate{}, false, errors.Wrap(err, "failed to read geocode cache entry")
	}

	coord, err := decodeEntry(raw)
	if err != nil {
		return entity.Coordinate{}, false, err
	}

	return coord, true, nil
}

// Put stores coord under key.
func (c *RedisCache) Put(ctx context.Context, key string, coord entity.Coordinate) error {
	raw, err := encodeEntry(coord)
	if err != nil {
		return err
	}

	if err := c.client.HSet(ctx, c.hashKey, key, raw).Err(); err != nil {
		return errors.Wrap(err, "failed to write geocode cache entry")
	}

	return nil
}

func encodeEntry(coord entity.Coordinate) (string, error) {
	data, err := json.Marshal(storedCoordinate{Latitude: coord.Lat, Longitude: coord.Lng})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode geocode cache entry")
	}

	return string(data), nil
}

func decodeEntry(raw string) (entity.Coordinate, error) {
	var stored storedCoordinate
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to decode geocode cache entry")
	}

	return entity.NewCoordinate(stored.Latitude, stored.Longitude), nil
}
