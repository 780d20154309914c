package service

import (
	"context"

	"locator/internal/domain/entity"
)

// CarrierSource reads the external carrier spreadsheet.
type CarrierSource interface {
	// ReadRows returns every data row of the source. A source missing required
	// columns yields domainerrors.ErrSchemaMismatch.
	ReadRows(ctx context.Context) ([]entity.CarrierSourceRow, error)
}
