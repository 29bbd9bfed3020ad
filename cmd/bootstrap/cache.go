package bootstrap

import (
	"context"
	"log/slog"

	"rental-marketplace/internal/infra/cache"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSearchCache,
	),
)

// NewSearchCache falls back to a no-op cache when REDIS_ADDR is empty.
func NewSearchCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.PropertySearchCache, shared.SearchCacheInvalidator, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("search cache disabled")
		noop := cache.NoopSearchCache{}
		return noop, noop, nil
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to reach redis")
			}
			logger.Info("search cache connected", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	c := cache.NewPropertySearchCache(client, cfg.Redis.SearchTTL)
	return c, c, nil
}
