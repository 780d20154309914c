package impl

import (
	"context"
	"testing"

	"locator/config"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/infra/similarity"
	mockRepo "locator/internal/mocks/repository"
	mockService "locator/internal/mocks/service"
	"locator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationFixture struct {
	cache    *mockRepo.MockGeocodeCache
	geocoder *mockService.MockGeocoder
}

func newLocationService(t *testing.T, sim service.Similarity, withGeocoder bool) (usecase.LocationUsecase, *locationFixture) {
	t.Helper()

	f := &locationFixture{cache: mockRepo.NewMockGeocodeCache(t)}
	params := LocationServiceParams{
		Cache:      f.cache,
		Index:      newTestIndex(),
		Similarity: sim,
		Config:     &config.Config{Resolver: &config.ResolverConfig{FuzzyThreshold: 80}},
		Logger:     newTestLogger(),
	}
	if withGeocoder {
		f.geocoder = mockService.NewMockGeocoder(t)
		params.Geocoder = f.geocoder
	}

	return NewLocationService(params), f
}

func TestLocationService_Resolve_InvalidState(t *testing.T) {
	svc, _ := newLocationService(t, similarity.NewLevenshtein(), false)

	for _, st := range []string{"xx", "XX", "", "S", "SPX", "BR"} {
		_, err := svc.Resolve(context.Background(), "São Paulo", st)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidState, "state %q", st)
	}
}

func TestLocationService_Resolve_EveryStateIsAccepted(t *testing.T) {
	svc, f := newLocationService(t, similarity.NewLevenshtein(), false)
	f.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(entity.Coordinate{Lat: -10, Lng: -50}, true, nil)

	for _, st := range entity.AllStates() {
		res, err := svc.Resolve(context.Background(), "Qualquer", string(st))
		require.NoError(t, err, "state %s", st)
		assert.Equal(t, st, res.State)
	}
}

func TestLocationService_Resolve_EmptyCity(t *testing.T) {
	svc, _ := newLocationService(t, similarity.NewLevenshtein(), false)

	_, err := svc.Resolve(context.Background(), "   ", "SP")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLocationService_Resolve_CacheHitSkipsOtherStages(t *testing.T) {
	// A similarity that fails the test if it is consulted.
	sim := service.SimilarityFunc(func(a, b string) int {
		t.Fatalf("similarity must not be called on cache hit")

		return 0
	})
	svc, f := newLocationService(t, sim, true)
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, "sao paulo|sp").Return(entity.NewCoordinate(-23.55, -46.63), true, nil)

	res, err := svc.Resolve(ctx, "São Paulo", "SP")
	require.NoError(t, err)
	assert.Equal(t, usecase.SourceCache, res.Source)
	assert.Equal(t, entity.NewCoordinate(-23.55, -46.63), res.Coordinate)
	f.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_Resolve_ExactMatchWritesThrough(t *testing.T) {
	svc, f := newLocationService(t, similarity.NewLevenshtein(), false)
	ctx := context.Background()
	want := entity.NewCoordinate(-21.1775, -47.8103)

	f.cache.EXPECT().Get(ctx, "ribeirao preto|sp").Return(entity.Coordinate{}, false, nil)
	f.cache.EXPECT().Put(ctx, "ribeirao preto|sp", want).Return(nil)

	res, err := svc.Resolve(ctx, "  RIBEIRAO   preto ", " sp ")
	require.NoError(t, err)
	assert.Equal(t, usecase.SourceIndex, res.Source)
	assert.Equal(t, "Ribeirão Preto", res.MatchedName)
	assert.Equal(t, want, res.Coordinate)
}

func TestLocationService_Resolve_FuzzyThreshold(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		wantOK bool
	}{
		{name: "below threshold", score: 79, wantOK: false},
		{name: "at threshold", score: 80, wantOK: true},
		{name: "above threshold", score: 95, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := scriptedSimilarity(map[[2]string]int{
				{"campinaz", "campinas"}: tt.score,
			})
			svc, f := newLocationService(t, sim, false)
			ctx := context.Background()

			f.cache.EXPECT().Get(ctx, "campinaz|sp").Return(entity.Coordinate{}, false, nil)
			if tt.wantOK {
				f.cache.EXPECT().Put(ctx, "campinaz|sp", entity.NewCoordinate(-22.9056, -47.0608)).Return(nil)
			}

			res, err := svc.Resolve(ctx, "Campinaz", "SP")
			if !tt.wantOK {
				assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, usecase.SourceFuzzy, res.Source)
			assert.Equal(t, "Campinas", res.MatchedName)
		})
	}
}

func TestLocationService_Resolve_FuzzyTieKeepsIndexOrder(t *testing.T) {
	sim := scriptedSimilarity(map[[2]string]int{
		{"campo", "campo grande"}: 85,
		{"campo", "dourados"}:     85,
	})
	svc, f := newLocationService(t, sim, false)
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, "campo|ms").Return(entity.Coordinate{}, false, nil)
	f.cache.EXPECT().Put(ctx, "campo|ms", mock.AnythingOfType("entity.Coordinate")).Return(nil)

	res, err := svc.Resolve(ctx, "Campo", "MS")
	require.NoError(t, err)
	assert.Equal(t, "Campo Grande", res.MatchedName)
}

func TestLocationService_Resolve_FuzzyOnlyConsidersSameState(t *testing.T) {
	svc, f := newLocationService(t, similarity.NewLevenshtein(), false)
	ctx := context.Background()

	// "Rio de Janeiro" is in RJ, so a SP query for it must not match.
	f.cache.EXPECT().Get(ctx, "rio de janeiro|sp").Return(entity.Coordinate{}, false, nil)

	_, err := svc.Resolve(ctx, "Rio de Janeiro", "SP")
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_Resolve_GeocoderFallback(t *testing.T) {
	svc, f := newLocationService(t, scriptedSimilarity(nil), true)
	ctx := context.Background()
	want := entity.NewCoordinate(-7.1195, -34.8450)

	f.cache.EXPECT().Get(ctx, "joao pessoa|pb").Return(entity.Coordinate{}, false, nil)
	f.geocoder.EXPECT().Geocode(ctx, "João Pessoa", entity.State("PB")).Return(want, nil)
	f.cache.EXPECT().Put(ctx, "joao pessoa|pb", want).Return(nil)

	res, err := svc.Resolve(ctx, "João Pessoa", "pb")
	require.NoError(t, err)
	assert.Equal(t, usecase.SourceGeocoder, res.Source)
	assert.Equal(t, want, res.Coordinate)
}

func TestLocationService_Resolve_GeocoderErrorsPropagate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no results", err: domainerrors.ErrLocationNotFound, wantErr: domainerrors.ErrLocationNotFound},
		{name: "provider failure", err: domainerrors.ErrGeocodeFailed.WithDetails("timeout"), wantErr: domainerrors.ErrGeocodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f := newLocationService(t, scriptedSimilarity(nil), true)
			ctx := context.Background()

			f.cache.EXPECT().Get(ctx, "atlantida|pb").Return(entity.Coordinate{}, false, nil)
			f.geocoder.EXPECT().Name().Return("google").Maybe()
			f.geocoder.EXPECT().Geocode(ctx, "Atlantida", entity.State("PB")).Return(entity.Coordinate{}, tt.err)

			res, err := svc.Resolve(ctx, "Atlantida", "PB")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocationService_Resolve_CacheWriteFailureStillResolves(t *testing.T) {
	svc, f := newLocationService(t, similarity.NewLevenshtein(), false)
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, "campinas|sp").Return(entity.Coordinate{}, false, nil)
	f.cache.EXPECT().Put(ctx, "campinas|sp", mock.Anything).Return(assert.AnError)

	res, err := svc.Resolve(ctx, "Campinas", "SP")
	require.NoError(t, err)
	assert.Equal(t, usecase.SourceIndex, res.Source)
}

func TestLocationService_Resolve_CacheReadFailureFallsThrough(t *testing.T) {
	svc, f := newLocationService(t, similarity.NewLevenshtein(), false)
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, "campinas|sp").Return(entity.Coordinate{}, false, assert.AnError)
	f.cache.EXPECT().Put(ctx, "campinas|sp", mock.Anything).Return(nil)

	res, err := svc.Resolve(ctx, "Campinas", "SP")
	require.NoError(t, err)
	assert.Equal(t, usecase.SourceIndex, res.Source)
}
