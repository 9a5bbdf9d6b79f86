package controllers_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAuthController,
	controllers.NewTripController,
	controllers.NewStopController,
	controllers.NewActivityController,
	controllers.NewExpenseController,
	controllers.NewBudgetController,
	controllers.NewPublicController,
	controllers.NewCityController,
)
