package handler

import (
	"log/slog"
	"net/http"

	"locator/internal/delivery/http/response"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler exposes the city/state resolver
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ResolveLocationRequest holds the query parameters of GET /api/v1/locations/resolve
type ResolveLocationRequest struct {
	City  string `query:"city" validate:"required"`
	State string `query:"state" validate:"required"`
}

// Resolve handles GET /api/v1/locations/resolve
func (h *LocationHandler) Resolve(c echo.Context) error {
	var req ResolveLocationRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, codeValidationError, err.Error())
	}

	resolution, err := h.locationUC.Resolve(c.Request().Context(), req.City, req.State)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resolution, "Location resolved successfully")
}
