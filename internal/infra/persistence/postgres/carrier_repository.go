// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// carrierRepository implements the domain.CarrierRepository interface.
type carrierRepository struct {
	db    *gorm.DB
	guard *SchemaGuard

	// inTx is set for repositories bound to a transaction; reads then stay on
	// the transaction connection instead of a replica.
	inTx bool
}

// NewCarrierRepository is the constructor for carrierRepository.
func NewCarrierRepository(db *gorm.DB, guard *SchemaGuard) repository.CarrierRepository {
	return &carrierRepository{db: db, guard: guard}
}

// ListCarriers returns every persisted carrier. Outside a transaction it reads from a replica.
func (repo *carrierRepository) ListCarriers(ctx context.Context) ([]*entity.Carrier, error) {
	if err := repo.guard.Check(ctx, repo.db); err != nil {
		return nil, err
	}

	db := repo.db.WithContext(ctx)
	if !repo.inTx {
		db = db.Clauses(dbresolver.Read)
	}

	var carrierModels []*model.CarrierModel
	if err := db.Order("uf_origem, cidade_origem, id").Find(&carrierModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list carriers")
	}

	carriers := make([]*entity.Carrier, 0, len(carrierModels))
	for _, carrierM := range carrierModels {
		carriers = append(carriers, toCarrierDomain(carrierM))
	}

	return carriers, nil
}

// FindCarriersByKeys loads carriers of the requested states in one query and
// matches them on the normalized origin. Rows are locked when running inside a transaction.
func (repo *carrierRepository) FindCarriersByKeys(ctx context.Context, keys []entity.CarrierKey) (map[entity.CarrierKey]*entity.Carrier, error) {
	if err := repo.guard.Check(ctx, repo.db); err != nil {
		return nil, err
	}

	result := make(map[entity.CarrierKey]*entity.Carrier, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	wanted := make(map[entity.CarrierKey]struct{}, len(keys))
	states := make([]string, 0)
	seenStates := make(map[entity.State]struct{})
	for _, k := range keys {
		wanted[k] = struct{}{}
		if _, ok := seenStates[k.State]; !ok {
			seenStates[k.State] = struct{}{}
			states = append(states, string(k.State))
		}
	}

	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)
	if repo.inTx {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var carrierModels []*model.CarrierModel
	if err := db.Where("uf_origem IN ?", states).Order("id").Find(&carrierModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find carriers by origin")
	}

	for _, carrierM := range carrierModels {
		carrier := toCarrierDomain(carrierM)
		key := carrier.Key()
		if _, ok := wanted[key]; !ok {
			continue
		}
		// Legacy rows may share an origin. Ids are random, so which duplicate is
		// synchronized is arbitrary, but ORDER BY id keeps it the same every run.
		if _, exists := result[key]; !exists {
			result[key] = carrier
		}
	}

	return result, nil
}

// CreateCarrier persists a new carrier.
func (repo *carrierRepository) CreateCarrier(ctx context.Context, carrier *entity.Carrier) error {
	if err := repo.guard.Check(ctx, repo.db); err != nil {
		return err
	}

	if carrier.ID == uuid.Nil {
		carrier.ID = uuid.New()
	}
	carrierM := fromCarrierDomain(carrier)

	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Create(carrierM).Error; err != nil {
		if kind, ok := constraintViolation(err); ok {
			return domainerrors.ErrSchemaMismatch.WithDetails(kind + " constraint: " + err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create carrier")
	}

	return nil
}

// UpdateCarrier overwrites every mutable column of an existing carrier.
func (repo *carrierRepository) UpdateCarrier(ctx context.Context, carrier *entity.Carrier) error {
	if err := repo.guard.Check(ctx, repo.db); err != nil {
		return err
	}

	carrierM := fromCarrierDomain(carrier)
	res := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Model(&model.CarrierModel{ID: carrier.ID}).
		Select("*").
		Omit("id").
		Updates(carrierM)
	if res.Error != nil {
		if kind, ok := constraintViolation(res.Error); ok {
			return domainerrors.ErrSchemaMismatch.WithDetails(kind + " constraint: " + res.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update carrier")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrCarrierNotFound, "update carrier %s", carrier.ID)
	}

	return nil
}

func toCarrierDomain(data *model.CarrierModel) *entity.Carrier {
	if data == nil {
		return nil
	}

	state, _ := entity.ParseState(data.OriginState)

	return &entity.Carrier{
		ID:              data.ID,
		OriginCity:      data.OriginCity,
		OriginState:     state,
		GroupName:       data.GroupName,
		CarrierName:     data.CarrierName,
		Company:         data.Company,
		Contact:         data.Contact,
		HasLoaded:       data.HasLoaded,
		HasRegistration: data.HasRegistration,
		Product:         data.Product,
		Price:           data.Price,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
	}
}

func fromCarrierDomain(data *entity.Carrier) *model.CarrierModel {
	if data == nil {
		return nil
	}

	return &model.CarrierModel{
		ID:              data.ID,
		OriginCity:      data.OriginCity,
		OriginState:     string(data.OriginState),
		GroupName:       data.GroupName,
		CarrierName:     data.CarrierName,
		Company:         data.Company,
		Contact:         data.Contact,
		HasLoaded:       data.HasLoaded,
		HasRegistration: data.HasRegistration,
		Product:         data.Product,
		Price:           entity.RoundPrice(data.Price),
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
	}
}
