package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"proforge/internal/repositories"
	"proforge/internal/services"
)

var Module = fx.Provide(
	providePlanRepo,
	providePlanService,
)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}
