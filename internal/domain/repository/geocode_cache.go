package repository

import (
	"context"

	"locator/internal/domain/entity"
)

// GeocodeCache is a durable mapping from a normalized "city|state" key to a coordinate.
// Implementations must be safe for concurrent use: a Put must never drop entries
// written by another concurrent Put.
type GeocodeCache interface {
	// Get returns the cached coordinate for key, if any.
	Get(ctx context.Context, key string) (entity.Coordinate, bool, error)

	// Put stores coord under key, replacing a previous value.
	Put(ctx context.Context, key string, coord entity.Coordinate) error
}
