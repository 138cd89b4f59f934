package redis_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"proforge/internal/config"
	"proforge/internal/infra"
	"proforge/internal/services"
	"proforge/pkg/middleware"
)

var Module = fx.Provide(
	provideRedisClient,
	provideBlocklist,
	provideRevoker,
)

func provideRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*infra.RedisClient, error) {
	client, err := infra.NewRedisClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func provideBlocklist(client *infra.RedisClient) middleware.TokenBlocklist {
	return client
}

func provideRevoker(client *infra.RedisClient) services.TokenRevoker {
	return client
}
