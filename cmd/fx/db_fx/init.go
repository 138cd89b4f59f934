package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"proforge/internal/config"
	"proforge/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrate),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db := infra.InitPostgresql(cfg, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})

	return db
}

func migrate(db *gorm.DB, logger *zap.Logger) {
	if err := infra.AutoMigrate(db); err != nil {
		logger.Fatal("auto-migration failed", zap.Error(err))
	}
}
