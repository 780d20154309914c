package repository

import "context"

// TransactionManager runs a unit of carrier store work atomically. A sync
// applies all of its inserts and updates through one call, so a failure
// leaves app_transportadoras as it was before the run.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the open transaction.
type RepositoryFactory interface {
	NewCarrierRepository() CarrierRepository
}
