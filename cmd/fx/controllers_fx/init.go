package controllers_fx

import (
	"arboris/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCodexController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewProbeController))
