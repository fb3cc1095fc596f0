package itineraryfx

import (
	"go.uber.org/fx"

	"mumtrails/internal/api/controllers"
	"mumtrails/internal/repositories"
	"mumtrails/internal/services"
)

var Module = fx.Provide(
	ProvideItineraryService,
	controllers.NewItineraryController,
)

func ProvideItineraryService(
	provider repositories.POIProvider,
	recommender services.RecommendServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(provider, recommender)
}
