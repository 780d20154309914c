package main

import (
	"context"
	"log/slog"
	"os"

	"locator/config"
	"locator/internal/delivery"
	"locator/internal/delivery/http"
	"locator/internal/delivery/http/router/handler"
	"locator/internal/infra/geocache"
	"locator/internal/infra/geocoding"
	logs "locator/internal/infra/log"
	"locator/internal/infra/municipality"
	"locator/internal/infra/persistence/postgres"
	"locator/internal/infra/similarity"
	"locator/internal/infra/spreadsheet"
	"locator/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		postgres.NewSchemaGuard,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCarrierRepository,
			postgres.NewTransactionManager,
			geocache.NewGeocodeCache,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			municipality.NewIndexFromConfig,
			similarity.NewLevenshtein,
			geocoding.NewGeocoder,
			spreadsheet.NewCarrierSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewProximityService,
			impl.NewCarrierService,
			impl.NewSyncService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewCarrierHandler,
			handler.NewLocationHandler,
			handler.NewSyncHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	logger := params.Logger.With(slog.String("binary", "locator"))

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				logger.Error("Delivery stopped", slog.Any("error", err))

				// Shut down through fx so the store and cache OnStop hooks still run.
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
