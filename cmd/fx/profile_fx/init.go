package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
)

var Module = fx.Provide(
	provideProfilePageRepo,
	provideTemplateRepo,
	provideProfilePageService,
	provideTemplateService,
)

func provideProfilePageRepo(db *gorm.DB) repositories.IProfilePageRepository {
	return repositories.NewProfilePageRepository(db)
}

func provideTemplateRepo(db *gorm.DB) repositories.ITemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideProfilePageService(
	pageRepo repositories.IProfilePageRepository,
	templateRepo repositories.ITemplateRepository,
	subscription services.SubscriptionServiceInterface,
) services.ProfilePageServiceInterface {
	return services.NewProfilePageService(pageRepo, templateRepo, subscription)
}

func provideTemplateService(
	templateRepo repositories.ITemplateRepository,
	subscription services.SubscriptionServiceInterface,
) services.TemplateServiceInterface {
	return services.NewTemplateService(templateRepo, subscription)
}
