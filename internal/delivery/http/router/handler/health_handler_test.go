package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/internal/domain/entity"
	"locator/internal/infra/municipality"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	index := municipality.NewIndex([]entity.Municipality{
		{Name: "Campinas", State: "SP", Coordinate: entity.NewCoordinate(-22.9056, -47.0608)},
		{Name: "Dourados", State: "MS", Coordinate: entity.NewCoordinate(-22.2231, -54.8118)},
	})
	h := NewHealthHandler(HealthHandlerParams{Index: index})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)
	data := body.Data.(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.InDelta(t, 2, data["municipalities"], 0)
}
