package postgres

import (
	"context"
	"strings"
	"sync"

	domainerrors "locator/internal/domain/errors"
	"locator/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// SchemaGuard verifies once per process that the carrier table exposes every
// required column. A confirmed mismatch is remembered; failures to reach the
// store are not, so the next call retries.
type SchemaGuard struct {
	mu      sync.Mutex
	checked bool
	err     error
}

// NewSchemaGuard creates an unchecked guard.
func NewSchemaGuard() *SchemaGuard {
	return &SchemaGuard{}
}

// Check returns nil when the schema is valid and ErrSchemaMismatch otherwise.
func (g *SchemaGuard) Check(ctx context.Context, db *gorm.DB) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.checked {
		return g.err
	}

	migrator := db.WithContext(ctx).Migrator()
	if !migrator.HasTable(&model.CarrierModel{}) {
		if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to inspect carrier table")
		}
		g.checked = true
		g.err = domainerrors.ErrSchemaMismatch.WithDetails("table " + model.CarrierModel{}.TableName() + " does not exist")

		return g.err
	}

	var missing []string
	for _, col := range model.CarrierColumns {
		if !migrator.HasColumn(&model.CarrierModel{}, col) {
			missing = append(missing, col)
		}
	}

	g.checked = true
	if len(missing) > 0 {
		g.err = domainerrors.ErrSchemaMismatch.WithDetails("missing columns: " + strings.Join(missing, ", "))
	}

	return g.err
}
