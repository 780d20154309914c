package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/config"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	mockUsecase "locator/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSyncHandler(t *testing.T, trigger bool) (*SyncHandler, *mockUsecase.MockSyncUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockSyncUsecase(t)
	cfg := &config.Config{Sync: &config.SyncConfig{HTTPTrigger: trigger}}

	return NewSyncHandler(SyncHandlerParams{SyncUC: uc, Config: cfg, Logger: newTestLogger()}), uc
}

func TestSyncHandler_Synchronize(t *testing.T) {
	h, uc := newSyncHandler(t, true)
	uc.EXPECT().
		SynchronizeFromSource(mock.Anything).
		Return(&entity.SyncReport{
			Inserted: 2,
			Updated:  1,
			Failed:   []entity.RowFailure{{Row: 4, City: "Cidade Perdida", State: "SP", Reason: "coordinates not found"}},
		}, nil).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Synchronize(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inserted":2`)
	assert.Contains(t, rec.Body.String(), `"reason":"coordinates not found"`)
}

func TestSyncHandler_Synchronize_Disabled(t *testing.T) {
	h, _ := newSyncHandler(t, false)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Synchronize(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SYNC_DISABLED", body.Error.Code)
}

func TestSyncHandler_Synchronize_InProgress(t *testing.T) {
	h, uc := newSyncHandler(t, true)
	uc.EXPECT().SynchronizeFromSource(mock.Anything).Return(nil, domainerrors.ErrSyncInProgress).Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Synchronize(e.NewContext(req, rec)))
	assert.Equal(t, domainerrors.ErrSyncInProgress.HTTPCode(), rec.Code)
}
