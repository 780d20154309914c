package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"locator/config"
	"locator/internal/domain/lifecycle"
	"locator/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Guard  *SchemaGuard
}

// New opens the carrier store. Startup pings the primary, verifies the
// app_transportadoras columns and starts the pool monitor.
func New(params Params) (*gorm.DB, error) {
	store := params.Config.Store
	if store == nil {
		store = &config.StoreConfig{
			SlowQueryThreshold:    config.DefaultSlowQueryThreshold,
			PoolMonitorInterval:   config.DefaultPoolMonitorInterval,
			PoolWaitWarnThreshold: config.DefaultPoolWaitWarnThreshold,
		}
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement work goes through the transaction manager.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := verifySchema(ctx, params.Logger, store.FailOnSchemaMismatch, func(ctx context.Context) error {
				return params.Guard.Check(ctx, db)
			}); err != nil {
				return err
			}

			monitor := &poolMonitor{logger: params.Logger, warnThreshold: store.PoolWaitWarnThreshold}
			go monitor.run(monitorCtx, sqlDB, store.PoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// verifySchema runs the column check once at boot. Queries would keep failing
// with the same error, so a mismatch is either fatal or logged right away.
func verifySchema(ctx context.Context, logger *slog.Logger, failOnMismatch bool, check func(context.Context) error) error {
	err := check(ctx)
	if err == nil {
		return nil
	}

	if failOnMismatch {
		return errors.Wrap(err, "carrier table schema check failed")
	}

	if logger != nil {
		logger.Error("Carrier table schema check failed", slog.Any("error", err))
	}

	return nil
}

// poolMonitor reports connection pool waits between two stats snapshots.
type poolMonitor struct {
	logger        *slog.Logger
	warnThreshold time.Duration
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	if m.logger == nil || sqlDB == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	msg := "Carrier store pool wait observed"
	if waited >= m.warnThreshold {
		level = slog.LevelWarn
		msg = "Carrier store pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
