package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"locator/config"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

// Row failure reasons reported in SyncReport.Failed.
const (
	reasonEmptyCity     = "empty city"
	reasonInvalidState  = "invalid state"
	reasonNoCoordinates = "coordinates not found"
	reasonFieldTooLong  = "value too long for column "
)

type syncService struct {
	txManager      repository.TransactionManager
	index          service.MunicipalityIndex
	similarity     service.Similarity
	source         service.CarrierSource
	fuzzyFallback  bool
	fuzzyThreshold int
	logger         *slog.Logger

	// mu serializes runs inside the process.
	mu sync.Mutex
}

// SyncServiceParams holds dependencies for the synchronizer, injected by Fx.
type SyncServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Index      service.MunicipalityIndex
	Similarity service.Similarity
	Source     service.CarrierSource `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSyncService creates the dataset synchronizer.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	svc := &syncService{
		txManager:      params.TxManager,
		index:          params.Index,
		similarity:     params.Similarity,
		source:         params.Source,
		fuzzyThreshold: config.DefaultFuzzyThreshold,
		logger:         params.Logger,
	}
	if cfg := params.Config; cfg != nil {
		if cfg.Sync != nil {
			svc.fuzzyFallback = cfg.Sync.FuzzyFallback
		}
		if cfg.Resolver != nil && cfg.Resolver.FuzzyThreshold > 0 {
			svc.fuzzyThreshold = cfg.Resolver.FuzzyThreshold
		}
	}

	return svc
}

// SynchronizeFromSource reads the configured spreadsheet and synchronizes its rows.
func (s *syncService) SynchronizeFromSource(ctx context.Context) (*entity.SyncReport, error) {
	if s.source == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("no carrier source configured")
	}

	rows, err := s.source.ReadRows(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read carrier source")
	}

	return s.Synchronize(ctx, rows)
}

// Synchronize upserts the resolved rows. Persisted carriers missing from rows are left untouched.
func (s *syncService) Synchronize(ctx context.Context, rows []entity.CarrierSourceRow) (*entity.SyncReport, error) {
	if !s.mu.TryLock() {
		return nil, domainerrors.ErrSyncInProgress
	}
	defer s.mu.Unlock()

	start := time.Now()
	report := &entity.SyncReport{Failed: []entity.RowFailure{}}

	carriers, keys := s.resolveRows(rows, report)
	if len(carriers) > 0 {
		counts, err := s.upsert(ctx, carriers, keys)
		if err != nil {
			s.logger.Error("Carrier synchronization aborted",
				slog.Int("rows", len(rows)),
				slog.Any("error", err),
			)

			return nil, err
		}
		report.Inserted, report.Updated, report.Unchanged = counts.Inserted, counts.Updated, counts.Unchanged
	}

	s.logger.Info("Carrier synchronization finished",
		slog.Int("rows", len(rows)),
		slog.Int("inserted", report.Inserted),
		slog.Int("updated", report.Updated),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("failed", len(report.Failed)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return report, nil
}

// resolveRows turns source rows into carriers with coordinates, keyed by normalized origin.
// Within one batch the later row for a key replaces the earlier one.
func (s *syncService) resolveRows(rows []entity.CarrierSourceRow, report *entity.SyncReport) ([]*entity.Carrier, []entity.CarrierKey) {
	carriers := make([]*entity.Carrier, 0, len(rows))
	positions := make(map[entity.CarrierKey]int, len(rows))
	sourceRows := make(map[entity.CarrierKey]int, len(rows))

	for _, row := range rows {
		carrier, reason := s.resolveRow(row)
		if reason != "" {
			report.Failed = append(report.Failed, entity.RowFailure{
				Row:    row.Row,
				City:   row.OriginCity,
				State:  row.OriginState,
				Reason: reason,
			})

			continue
		}

		key := carrier.Key()
		if pos, dup := positions[key]; dup {
			s.logger.Warn("Duplicate carrier origin in source, keeping the later row",
				slog.String("city", key.City),
				slog.String("state", string(key.State)),
				slog.Int("replaced_row", sourceRows[key]),
				slog.Int("row", row.Row),
			)
			carriers[pos] = carrier
			sourceRows[key] = row.Row

			continue
		}

		positions[key] = len(carriers)
		sourceRows[key] = row.Row
		carriers = append(carriers, carrier)
	}

	keys := make([]entity.CarrierKey, len(carriers))
	for i, c := range carriers {
		keys[i] = c.Key()
	}

	return carriers, keys
}

// resolveRow returns the carrier for row, or the reason it cannot be synchronized.
func (s *syncService) resolveRow(row entity.CarrierSourceRow) (*entity.Carrier, string) {
	city := strings.TrimSpace(row.OriginCity)
	if entity.NormalizeName(city) == "" {
		return nil, reasonEmptyCity
	}

	state, ok := entity.ParseState(row.OriginState)
	if !ok {
		return nil, reasonInvalidState
	}

	m, found := s.index.Lookup(city, state)
	if !found && s.fuzzyFallback {
		m, _, found = bestFuzzyMatch(s.index, s.similarity, city, state, s.fuzzyThreshold)
	}
	if !found {
		return nil, reasonNoCoordinates
	}

	carrier := &entity.Carrier{
		OriginCity:      city,
		OriginState:     state,
		GroupName:       strings.TrimSpace(row.GroupName),
		CarrierName:     strings.TrimSpace(row.CarrierName),
		Company:         strings.TrimSpace(row.Company),
		Contact:         strings.TrimSpace(row.Contact),
		HasLoaded:       row.HasLoaded,
		HasRegistration: row.HasRegistration,
		Product:         strings.TrimSpace(row.Product),
		Price:           entity.RoundPrice(row.Price),
	}
	if field := carrier.OversizedField(); field != "" {
		return nil, reasonFieldTooLong + field
	}
	carrier.SetCoordinate(m.Coordinate)

	return carrier, ""
}

// upsert diffs carriers against the store and writes the changes in one transaction.
func (s *syncService) upsert(ctx context.Context, carriers []*entity.Carrier, keys []entity.CarrierKey) (entity.SyncReport, error) {
	var counts entity.SyncReport

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		counts = entity.SyncReport{}
		carrierRepo := txRepoFactory.NewCarrierRepository()

		existing, err := carrierRepo.FindCarriersByKeys(ctx, keys)
		if err != nil {
			return errors.Wrap(err, "failed to load persisted carriers")
		}

		for i, carrier := range carriers {
			current, ok := existing[keys[i]]
			switch {
			case !ok:
				if err := carrierRepo.CreateCarrier(ctx, carrier); err != nil {
					return errors.Wrap(err, "failed to create carrier")
				}
				counts.Inserted++
			case current.SameContent(carrier):
				counts.Unchanged++
			default:
				current.ApplyContent(carrier)
				if err := carrierRepo.UpdateCarrier(ctx, current); err != nil {
					return errors.Wrap(err, "failed to update carrier")
				}
				counts.Updated++
			}
		}

		return nil
	})
	if err != nil {
		return entity.SyncReport{}, errors.Wrap(err, "carrier synchronization transaction failed")
	}

	return counts, nil
}
