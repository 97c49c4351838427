package catalogcache

import (
	"context"

	"go.uber.org/fx"

	"github.com/chlagouGhassen/pizza-petes/internal/config"
)

// Module exposes the catalog cache implementation to the fx graph.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerLifecycle),
)

type cacheParams struct {
	fx.In

	Config *config.Config
}

func newCache(p cacheParams) Cache {
	if p.Config.CacheAddress == "" {
		return NoopCache{}
	}
	return NewRedisCache(p.Config.CacheAddress, p.Config.CatalogCacheTTL)
}

func registerLifecycle(lc fx.Lifecycle, cache Cache) {
	redisCache, ok := cache.(*RedisCache)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return redisCache.Close()
		},
	})
}
