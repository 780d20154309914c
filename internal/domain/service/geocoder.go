// Package service declares capabilities the use cases depend on but do not implement.
package service

import (
	"context"

	"locator/internal/domain/entity"
)

// Geocoder converts a free-text city and state into a coordinate using an external provider.
//
// Geocode returns domainerrors.ErrLocationNotFound when the provider answers
// with no results and domainerrors.ErrGeocodeFailed for transport failures,
// timeouts and non-success responses.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, city string, state entity.State) (entity.Coordinate, error)
}
