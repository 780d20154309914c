// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// CarrierRepository defines the interface for carrier-related database operations.
// Implementations validate the table schema once and return
// domainerrors.ErrSchemaMismatch when required columns are missing, and
// domainerrors.ErrStoreUnavailable (via DatabaseExecuteError) when the store cannot be reached.
type CarrierRepository interface {
	// ListCarriers returns every persisted carrier, including those without coordinates.
	ListCarriers(ctx context.Context) ([]*entity.Carrier, error)

	// FindCarriersByKeys returns persisted carriers whose normalized origin matches one of keys.
	FindCarriersByKeys(ctx context.Context, keys []entity.CarrierKey) (map[entity.CarrierKey]*entity.Carrier, error)

	// CreateCarrier persists a new carrier and fills in its generated ID.
	CreateCarrier(ctx context.Context, carrier *entity.Carrier) error

	// UpdateCarrier overwrites every mutable field of an existing carrier.
	UpdateCarrier(ctx context.Context, carrier *entity.Carrier) error
}

// ErrCarrierNotFound is returned when an update targets a carrier that no longer exists.
var ErrCarrierNotFound = errors.New("carrier not found")
