package geocache

import (
	"context"
	"log/slog"

	"locator/config"
	"locator/internal/domain/lifecycle"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/infra/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultRedisHashKey = "locator:geocode"

// CacheParams holds dependencies for GeocodeCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewGeocodeCache creates a GeocodeCache based on configuration
func NewGeocodeCache(params CacheParams) (repository.GeocodeCache, error) {
	cfg := params.Config.GeocodeCache
	logger := params.Logger

	switch cfg.Provider {
	case config.GeocodeCacheProviderMemory:
		bucket, err := storage.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open geocode cache bucket")
		}

		cache, err := NewSnapshotCache(params.Ctx, bucket, cfg.Key, logger)
		if err != nil {
			bucket.Close()

			return nil, err
		}
		logger.Info("Using blob snapshot geocode cache",
			slog.String("bucket", cfg.BucketURL),
			slog.String("key", cfg.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return bucket.Close()
			},
		})

		return cache, nil

	case config.GeocodeCacheProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}

		hashKey := cfg.Redis.HashKey
		if hashKey == "" {
			hashKey = defaultRedisHashKey
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Using Redis geocode cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("hashKey", hashKey),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})

		return NewRedisCache(client, hashKey), nil

	default:
		return nil, errors.Errorf("unknown geocode cache provider: %s", cfg.Provider)
	}
}
