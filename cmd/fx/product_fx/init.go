package product_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
)

var Module = fx.Provide(
	provideProductRepo,
	provideProductService,
)

func provideProductRepo(db *gorm.DB) repositories.IProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(
	productRepo repositories.IProductRepository,
	subscription services.SubscriptionServiceInterface,
) services.ProductServiceInterface {
	return services.NewProductService(productRepo, subscription)
}
