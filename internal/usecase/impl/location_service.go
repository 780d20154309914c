package impl

import (
	"context"
	"log/slog"
	"strings"

	"locator/config"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

type locationService struct {
	cache          repository.GeocodeCache
	index          service.MunicipalityIndex
	similarity     service.Similarity
	geocoder       service.Geocoder
	fuzzyThreshold int
	logger         *slog.Logger
}

// LocationServiceParams holds dependencies for the location resolver, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Cache      repository.GeocodeCache
	Index      service.MunicipalityIndex
	Similarity service.Similarity
	Geocoder   service.Geocoder `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewLocationService creates the resolver. A nil Geocoder disables the external step.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	threshold := config.DefaultFuzzyThreshold
	if params.Config != nil && params.Config.Resolver != nil && params.Config.Resolver.FuzzyThreshold > 0 {
		threshold = params.Config.Resolver.FuzzyThreshold
	}

	return &locationService{
		cache:          params.Cache,
		index:          params.Index,
		similarity:     params.Similarity,
		geocoder:       params.Geocoder,
		fuzzyThreshold: threshold,
		logger:         params.Logger,
	}
}

// Resolve turns a city/state pair into a coordinate.
func (s *locationService) Resolve(ctx context.Context, city, state string) (*usecase.Resolution, error) {
	st, ok := entity.ParseState(state)
	if !ok {
		return nil, domainerrors.ErrInvalidState.WithDetails(strings.TrimSpace(state))
	}

	city = strings.TrimSpace(city)
	if entity.NormalizeName(city) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}

	key := entity.CacheKey(city, st)
	res := &usecase.Resolution{City: city, State: st}

	coord, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Geocode cache read failed, continuing without cache",
			slog.String("key", key),
			slog.Any("error", err),
		)
	} else if found {
		res.Coordinate, res.Source = coord, usecase.SourceCache
		s.logResolution(res)

		return res, nil
	}

	if m, ok := s.index.Lookup(city, st); ok {
		res.Coordinate, res.Source, res.MatchedName = m.Coordinate, usecase.SourceIndex, m.Name
		s.remember(ctx, key, res)

		return res, nil
	}

	if m, score, ok := bestFuzzyMatch(s.index, s.similarity, city, st, s.fuzzyThreshold); ok {
		s.logger.Debug("Fuzzy municipality match",
			slog.String("input", city),
			slog.String("matched", m.Name),
			slog.Int("score", score),
		)
		res.Coordinate, res.Source, res.MatchedName = m.Coordinate, usecase.SourceFuzzy, m.Name
		s.remember(ctx, key, res)

		return res, nil
	}

	if s.geocoder == nil {
		return nil, domainerrors.ErrLocationNotFound.WithDetails(city + "/" + string(st))
	}

	coord, err = s.geocoder.Geocode(ctx, city, st)
	if err != nil {
		return nil, errors.Wrapf(err, "geocode %s/%s via %s", city, st, s.geocoder.Name())
	}

	res.Coordinate, res.Source = coord, usecase.SourceGeocoder
	s.remember(ctx, key, res)

	return res, nil
}

// remember writes a fresh resolution through to the cache. A failed write only logs.
func (s *locationService) remember(ctx context.Context, key string, res *usecase.Resolution) {
	if err := s.cache.Put(ctx, key, res.Coordinate); err != nil {
		s.logger.Warn("Failed to store geocode cache entry",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	s.logResolution(res)
}

func (s *locationService) logResolution(res *usecase.Resolution) {
	s.logger.Debug("Location resolved",
		slog.String("city", res.City),
		slog.String("state", string(res.State)),
		slog.String("source", string(res.Source)),
		slog.Float64("lat", res.Coordinate.Lat),
		slog.Float64("lng", res.Coordinate.Lng),
	)
}
