package wallet_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo,
	providePaymentSettingRepo,
	provideReferralRepo,
	provideWalletService,
	provideReferralService,
)

func provideTransactionRepo(db *gorm.DB) repositories.IWalletTransactionRepository {
	return repositories.NewWalletTransactionRepository(db)
}

func providePaymentSettingRepo(db *gorm.DB) repositories.IPaymentSettingRepository {
	return repositories.NewPaymentSettingRepository(db)
}

func provideReferralRepo(db *gorm.DB) repositories.IReferralRepository {
	return repositories.NewReferralRepository(db)
}

func provideWalletService(
	profileRepo repositories.WalletProfileRepository,
	txnRepo repositories.IWalletTransactionRepository,
	settingsRepo repositories.IPaymentSettingRepository,
) services.WalletServiceInterface {
	return services.NewWalletService(profileRepo, txnRepo, settingsRepo)
}

func provideReferralService(
	profileRepo repositories.WalletProfileRepository,
	referralRepo repositories.IReferralRepository,
) services.ReferralServiceInterface {
	return services.NewReferralService(profileRepo, referralRepo)
}
