package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// ResolutionSource names the stage of the resolution pipeline that produced a coordinate.
type ResolutionSource string

const (
	SourceCache    ResolutionSource = "cache"
	SourceIndex    ResolutionSource = "index"
	SourceFuzzy    ResolutionSource = "fuzzy"
	SourceGeocoder ResolutionSource = "geocoder"

	// SourceInput marks a coordinate supplied directly by the caller.
	SourceInput ResolutionSource = "input"
)

// Resolution is the outcome of resolving a city/state pair.
type Resolution struct {
	City       string            `json:"city"`
	State      entity.State      `json:"state"`
	Coordinate entity.Coordinate `json:"coordinate"`
	Source     ResolutionSource  `json:"source"`

	// MatchedName is the reference municipality name for index and fuzzy matches.
	MatchedName string `json:"matched_name,omitempty"`
}

// LocationUsecase resolves free-text city/state pairs into coordinates.
type LocationUsecase interface {
	// Resolve runs the cache -> exact index -> fuzzy -> external geocoder pipeline.
	// Errors are domainerrors.ErrInvalidState, ErrValidationFailed,
	// ErrLocationNotFound or ErrGeocodeFailed.
	Resolve(ctx context.Context, city, state string) (*Resolution, error)
}
