package usecase

import "locator/internal/domain/entity"

// ProximityUsecase orders carriers by great-circle distance from an origin.
type ProximityUsecase interface {
	// Rank returns at most k carriers with a valid coordinate, nearest first.
	// Ties keep the input order. Carriers without coordinates are skipped.
	Rank(origin entity.Coordinate, candidates []*entity.Carrier, k int) []entity.RankedCarrier
}
