package handler

import (
	"net/http"

	"locator/internal/delivery/http/response"
	"locator/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Index service.MunicipalityIndex
}

// HealthHandler reports liveness and the size of the loaded reference data.
type HealthHandler struct {
	index service.MunicipalityIndex
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{index: params.Index}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":         "ok",
		"municipalities": h.index.Len(),
	}, "Service is healthy")
}
