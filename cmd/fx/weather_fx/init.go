package weatherfx

import (
	"go.uber.org/fx"

	"mumtrails/internal/api/controllers"
	"mumtrails/internal/services"
)

var Module = fx.Provide(
	services.NewWeatherService,
	controllers.NewWeatherController,
)
