// Command syncer runs one carrier spreadsheet synchronization and exits.
package main

import (
	"context"
	"log/slog"
	"time"

	"locator/config"
	logs "locator/internal/infra/log"
	"locator/internal/infra/municipality"
	"locator/internal/infra/persistence/postgres"
	"locator/internal/infra/similarity"
	"locator/internal/infra/spreadsheet"
	"locator/internal/usecase"
	"locator/internal/usecase/impl"
	"locator/internal/util"

	"go.uber.org/fx"
)

type runSyncParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx    context.Context
	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewSchemaGuard,
			postgres.NewTransactionManager,
			municipality.NewIndexFromConfig,
			similarity.NewLevenshtein,
			spreadsheet.NewCarrierSource,
			impl.NewSyncService,
		),
		fx.Invoke(
			runSync,
		),
	).Run()
}

func runSync(params runSyncParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				start := time.Now()
				report, err := params.SyncUC.SynchronizeFromSource(params.Ctx)
				if err != nil {
					params.Logger.Error("Synchronization failed", slog.Any("error", err))
					exitCode = 1
				} else {
					params.Logger.Info("Synchronization finished",
						slog.Int("inserted", report.Inserted),
						slog.Int("updated", report.Updated),
						slog.Int("unchanged", report.Unchanged),
						slog.Int("failed", len(report.Failed)),
						slog.String("elapsed", util.Elapsed(time.Since(start))),
					)
					for _, failure := range report.Failed {
						params.Logger.Warn("Row skipped",
							slog.Int("row", failure.Row),
							slog.String("city", failure.City),
							slog.String("state", failure.State),
							slog.String("reason", failure.Reason),
						)
					}
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
