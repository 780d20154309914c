package impl

import (
	"context"
	"log/slog"
	"strconv"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

type carrierService struct {
	carrierRepo repository.CarrierRepository
	locations   usecase.LocationUsecase
	ranker      usecase.ProximityUsecase
	logger      *slog.Logger
}

// CarrierServiceParams holds dependencies for the carrier query service, injected by Fx.
type CarrierServiceParams struct {
	fx.In

	CarrierRepo repository.CarrierRepository
	Locations   usecase.LocationUsecase
	Ranker      usecase.ProximityUsecase
	Logger      *slog.Logger
}

// NewCarrierService creates the nearest-carrier query service.
func NewCarrierService(params CarrierServiceParams) usecase.CarrierUsecase {
	return &carrierService{
		carrierRepo: params.CarrierRepo,
		locations:   params.Locations,
		ranker:      params.Ranker,
		logger:      params.Logger,
	}
}

// FindNearestCarriers resolves the query origin and ranks every stored carrier against it.
func (s *carrierService) FindNearestCarriers(ctx context.Context, query *usecase.NearestCarriersQuery) (*usecase.NearestCarriersResult, error) {
	count, err := resultCount(query.Count)
	if err != nil {
		return nil, err
	}

	origin, err := s.resolveOrigin(ctx, query)
	if err != nil {
		return nil, err
	}

	carriers, err := s.carrierRepo.ListCarriers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carriers")
	}

	ranked := s.ranker.Rank(origin.Coordinate, carriers, count)

	s.logger.Debug("Nearest carriers ranked",
		slog.String("source", string(origin.Source)),
		slog.Int("stored", len(carriers)),
		slog.Int("returned", len(ranked)),
	)

	return &usecase.NearestCarriersResult{
		Origin:   origin,
		Carriers: ranked,
	}, nil
}

func (s *carrierService) resolveOrigin(ctx context.Context, query *usecase.NearestCarriersQuery) (*usecase.Resolution, error) {
	switch {
	case query.Latitude != nil && query.Longitude != nil:
		coord := entity.NewCoordinate(*query.Latitude, *query.Longitude)
		if !coord.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("latitude/longitude out of range")
		}

		return &usecase.Resolution{Coordinate: coord, Source: usecase.SourceInput}, nil
	case query.Latitude != nil || query.Longitude != nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together")
	default:
		return s.locations.Resolve(ctx, query.City, query.State)
	}
}

func resultCount(count int) (int, error) {
	if count == 0 {
		return usecase.DefaultResultCount, nil
	}
	if count < usecase.MinResultCount || count > usecase.MaxResultCount {
		return 0, domainerrors.ErrValidationFailed.WithDetails(
			"count must be between " + strconv.Itoa(usecase.MinResultCount) + " and " + strconv.Itoa(usecase.MaxResultCount),
		)
	}

	return count, nil
}
