package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	provideSubscriptionService,
	provideQuotaService,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, planRepo)
}

func provideQuotaService(
	subscription services.SubscriptionServiceInterface,
	pageRepo repositories.IProfilePageRepository,
	productRepo repositories.IProductRepository,
) services.QuotaServiceInterface {
	return services.NewQuotaService(subscription, pageRepo, productRepo)
}
