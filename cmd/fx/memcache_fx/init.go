package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	"tripwise/internal/config"
	"tripwise/internal/services"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

const minPurgeInterval = time.Minute

var Module = fx.Provide(provideEstimateCache)

// purgeInterval sweeps twice per TTL, but never more often than once a minute.
func purgeInterval(ttl time.Duration) time.Duration {
	return max(ttl/2, minPurgeInterval)
}

func provideEstimateCache(lc fx.Lifecycle, cfg *config.Config) *services.EstimateCache {
	cache := mem.NewTTLCache[string, utils.TripEstimate](cfg.AI.EstimateCacheTTL)

	var stop func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stop = cache.StartJanitor(purgeInterval(cfg.AI.EstimateCacheTTL))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if stop != nil {
				stop()
			}
			return nil
		},
	})
	return cache
}
