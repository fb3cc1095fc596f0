package recommendfx

import (
	"go.uber.org/fx"

	"mumtrails/internal/api/controllers"
	"mumtrails/internal/infra"
	"mumtrails/internal/repositories"
	"mumtrails/internal/services"
)

var Module = fx.Provide(
	ProvideRecommendService,
	controllers.NewRecommendController,
)

func ProvideRecommendService(
	provider repositories.POIProvider,
	embedder *services.EmbeddingService,
	settings *infra.Settings,
) services.RecommendServiceInterface {
	return services.NewRecommendService(provider, embedder, settings.RecoWeights)
}
