package handler

import (
	"log/slog"
	"net/http"

	"locator/config"
	"locator/internal/delivery/http/response"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Config *config.Config
	Logger *slog.Logger
}

// SyncHandler triggers a synchronization from the configured spreadsheet
type SyncHandler struct {
	syncUC  usecase.SyncUsecase
	enabled bool
	logger  *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC:  params.SyncUC,
		enabled: params.Config.Sync != nil && params.Config.Sync.HTTPTrigger,
		logger:  params.Logger,
	}
}

// Synchronize handles POST /api/v1/sync
func (h *SyncHandler) Synchronize(c echo.Context) error {
	if !h.enabled {
		return response.AppError(c, domainerrors.ErrSyncDisabled)
	}

	report, err := h.syncUC.SynchronizeFromSource(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Synchronization finished")
}
