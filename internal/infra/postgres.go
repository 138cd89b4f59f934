package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"proforge/internal/config"
	"proforge/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database connection", zap.Error(err))
	} else {
		logger.Info("database connection closed")
	}
}

// AutoMigrate keeps the schema in step with the model set. Catalog rows
// (plans, templates, payment settings) are seeded by the admin surface.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.WalletProfile{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Template{},
		&db_models.ProfilePage{},
		&db_models.Product{},
		&db_models.WalletTransaction{},
		&db_models.ReferralEarning{},
		&db_models.PaymentSetting{},
	)
}
