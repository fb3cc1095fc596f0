package chatfx

import (
	"go.uber.org/fx"

	"mumtrails/internal/api/controllers"
	"mumtrails/internal/infra"
	"mumtrails/internal/repositories"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

var Module = fx.Provide(
	ProvideRefiner,
	ProvideChatService,
	controllers.NewChatController,
)

func ProvideRefiner(settings *infra.Settings) services.Refiner {
	return utils.NewGeminiClient(settings.GeminiAPIKey, settings.GeminiModel, settings.GeminiRequestsPerMinute)
}

func ProvideChatService(
	provider repositories.POIProvider,
	embedder *services.EmbeddingService,
	refiner services.Refiner,
	store repositories.IPoiEmbeddingRepository,
) services.ChatServiceInterface {
	return services.NewChatService(provider, embedder, refiner, store)
}
