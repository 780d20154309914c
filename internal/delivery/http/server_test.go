package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/config"
	"locator/internal/delivery/http/router"
	"locator/internal/delivery/http/router/handler"
	"locator/internal/domain/entity"
	"locator/internal/infra/municipality"
	mockUsecase "locator/internal/mocks/usecase"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo       *echo.Echo
	carrierUC  *mockUsecase.MockCarrierUsecase
	locationUC *mockUsecase.MockLocationUsecase
	syncUC     *mockUsecase.MockSyncUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{Sync: &config.SyncConfig{HTTPTrigger: false}}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		carrierUC:  mockUsecase.NewMockCarrierUsecase(t),
		locationUC: mockUsecase.NewMockLocationUsecase(t),
		syncUC:     mockUsecase.NewMockSyncUsecase(t),
	}

	index := municipality.NewIndex([]entity.Municipality{
		{Name: "Campinas", State: "SP", Coordinate: entity.NewCoordinate(-22.9056, -47.0608)},
	})

	api.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{Index: index}),
		CarrierHandler:  handler.NewCarrierHandler(handler.CarrierHandlerParams{CarrierUC: api.carrierUC, Logger: logger}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: api.locationUC, Logger: logger}),
		SyncHandler:     handler.NewSyncHandler(handler.SyncHandlerParams{SyncUC: api.syncUC, Config: cfg, Logger: logger}),
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-sync-1")
	rec := api.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-sync-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"municipalities":1`)
}

func TestServer_NearestCarriersRoute(t *testing.T) {
	api := newTestAPI(t)
	api.carrierUC.EXPECT().
		FindNearestCarriers(mock.Anything, mock.Anything).
		Return(&usecase.NearestCarriersResult{Carriers: []entity.RankedCarrier{}}, nil).
		Once()

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/carriers/nearest?city=Campinas&state=SP", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"carriers":[]`)
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_SyncDisabledByDefault(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYNC_DISABLED")
}
