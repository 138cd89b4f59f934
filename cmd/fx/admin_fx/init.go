package admin_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
)

var Module = fx.Provide(
	provideSettlementService,
	provideAdminService,
)

func provideSettlementService(db *gorm.DB, logger *zap.Logger) services.SettlementServiceInterface {
	return services.NewSettlementService(db, logger)
}

func provideAdminService(
	accountRepo repositories.AccountRepository,
	txnRepo repositories.IWalletTransactionRepository,
	subRepo repositories.ISubscriptionRepository,
	pageRepo repositories.IProfilePageRepository,
	productRepo repositories.IProductRepository,
	settingsRepo repositories.IPaymentSettingRepository,
	logger *zap.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(accountRepo, txnRepo, subRepo, pageRepo, productRepo, settingsRepo, logger)
}
