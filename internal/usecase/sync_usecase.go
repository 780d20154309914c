package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// SyncUsecase reconciles the external carrier spreadsheet with the carrier store.
type SyncUsecase interface {
	// Synchronize upserts rows into the store inside one transaction.
	// Row-level problems are reported in SyncReport.Failed; store failures abort the run.
	Synchronize(ctx context.Context, rows []entity.CarrierSourceRow) (*entity.SyncReport, error)

	// SynchronizeFromSource reads the configured spreadsheet and synchronizes it.
	SynchronizeFromSource(ctx context.Context) (*entity.SyncReport, error)
}
