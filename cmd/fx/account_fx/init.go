package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
	mem "proforge/pkg/memcache"
	"proforge/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideWalletProfileRepo,
	provideAccountService,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideWalletProfileRepo(db *gorm.DB) repositories.WalletProfileRepository {
	return repositories.NewWalletProfileRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.WalletProfileRepository,
	subscription services.SubscriptionServiceInterface,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	tokenIssuer *utils.TokenIssuer,
	revoker services.TokenRevoker,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profileRepo, subscription, mailService, resetTokens, tokenIssuer, revoker, logger)
}
