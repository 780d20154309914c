package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

const (
	// DefaultResultCount is used when a query omits the number of results.
	DefaultResultCount = 5
	// MinResultCount and MaxResultCount bound the number of results per query.
	MinResultCount = 1
	MaxResultCount = 20
)

// NearestCarriersQuery asks for the carriers closest to either a city/state
// pair or an explicit coordinate. The coordinate wins when both are given.
type NearestCarriersQuery struct {
	City      string
	State     string
	Latitude  *float64
	Longitude *float64
	Count     int
}

// NearestCarriersResult is the ranked answer to a NearestCarriersQuery.
type NearestCarriersResult struct {
	Origin   *Resolution            `json:"origin"`
	Carriers []entity.RankedCarrier `json:"carriers"`
}

// CarrierUsecase answers proximity queries over the persisted carrier store.
type CarrierUsecase interface {
	FindNearestCarriers(ctx context.Context, query *NearestCarriersQuery) (*NearestCarriersResult, error)
}
