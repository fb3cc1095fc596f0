package travelfx

import (
	"go.uber.org/fx"

	"mumtrails/internal/api/controllers"
	"mumtrails/internal/infra"
	"mumtrails/internal/services"
)

var Module = fx.Provide(
	ProvideRouteTableClient,
	ProvideTravelService,
	controllers.NewTravelController,
)

func ProvideRouteTableClient(settings *infra.Settings) services.RouteTableClient {
	return services.NewOSRMTableClient(settings.OSRMURL)
}

func ProvideTravelService(router services.RouteTableClient) services.TravelServiceInterface {
	return services.NewTravelService(router)
}
