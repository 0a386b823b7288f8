package controllers_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewFeasibilityController),
	fx.Provide(controllers.NewEstimateController),
	fx.Provide(controllers.NewDashboardController))
