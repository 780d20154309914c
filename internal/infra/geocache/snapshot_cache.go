// Package geocache provides durable GeocodeCache implementations.
package geocache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// storedCoordinate is the on-disk shape of one cache entry.
type storedCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SnapshotCache keeps every entry in memory and persists the full map as a
// JSON snapshot object in a blob bucket after each Put.
//
// Puts are serialized end to end, so snapshots are written in the same order
// the map changed and no entry written by a concurrent Put is lost.
type SnapshotCache struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger

	writeMu sync.Mutex // serializes Put including the snapshot write
	mu      sync.RWMutex
	entries map[string]entity.Coordinate
}

var _ repository.GeocodeCache = (*SnapshotCache)(nil)

// NewSnapshotCache loads the snapshot stored under key, starting empty when it does not exist yet.
func NewSnapshotCache(ctx context.Context, bucket *blob.Bucket, key string, logger *slog.Logger) (*SnapshotCache, error) {
	cache := &SnapshotCache{
		bucket:  bucket,
		key:     key,
		logger:  logger,
		entries: make(map[string]entity.Coordinate),
	}

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return cache, nil
		}

		return nil, errors.Wrapf(err, "failed to read geocode cache snapshot %s", key)
	}

	stored := make(map[string]storedCoordinate)
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to decode geocode cache snapshot %s", key)
	}

	for k, v := range stored {
		cache.entries[k] = entity.NewCoordinate(v.Latitude, v.Longitude)
	}

	logger.Info("Geocode cache snapshot loaded", slog.Int("entries", len(cache.entries)))

	return cache, nil
}

// Get returns the cached coordinate for key.
func (c *SnapshotCache) Get(_ context.Context, key string) (entity.Coordinate, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coord, ok := c.entries[key]

	return coord, ok, nil
}

// Put stores coord under key and rewrites the snapshot.
// The in-memory entry is kept even when the snapshot write fails.
func (c *SnapshotCache) Put(ctx context.Context, key string, coord entity.Coordinate) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.entries[key] = coord
	data, err := c.encodeLocked()
	c.mu.Unlock()

	if err != nil {
		return err
	}

	if err := c.bucket.WriteAll(ctx, c.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "failed to write geocode cache snapshot %s", c.key)
	}

	return nil
}

// Len returns the number of cached entries.
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *SnapshotCache) encodeLocked() ([]byte, error) {
	stored := make(map[string]storedCoordinate, len(c.entries))
	for k, v := range c.entries {
		stored[k] = storedCoordinate{Latitude: v.Lat, Longitude: v.Lng}
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode geocode cache snapshot")
	}

	return data, nil
}
