package controllers_fx

import (
	"go.uber.org/fx"

	"proforge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewPublicController),
	fx.Provide(controllers.NewProductController),
	fx.Provide(controllers.NewWalletController),
	fx.Provide(controllers.NewAdminController),
)
