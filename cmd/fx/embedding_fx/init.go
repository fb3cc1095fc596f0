package embeddingfx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"mumtrails/internal/api/controllers"
	"mumtrails/internal/infra"
	"mumtrails/internal/repositories"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		ProvideEmbeddingClient,
		ProvideEmbeddingService,
		controllers.NewEmbedController,
		controllers.NewHealthController,
	),
	fx.Invoke(WarmPoiVectors),
)

// ProvideEmbeddingClient builds the configured provider; openai needs a
// key, everything else gets the offline hash vectorizer.
func ProvideEmbeddingClient(settings *infra.Settings) (utils.EmbeddingClientInterface, error) {
	apiKey := settings.OpenAIAPIKey
	model := settings.OpenAIModel
	if settings.EmbeddingProvider == "openai" && apiKey == "" {
		log.Println("OPENAI_API_KEY missing; using lexical embeddings instead")
		return utils.NewEmbeddingClient("lexical", "", "")
	}
	log.Printf("Initializing %s embedding client", settings.EmbeddingProvider)
	return utils.NewEmbeddingClient(settings.EmbeddingProvider, apiKey, model)
}

func ProvideEmbeddingService(
	client utils.EmbeddingClientInterface,
	store repositories.IPoiEmbeddingRepository,
) *services.EmbeddingService {
	return services.NewEmbeddingService(client, store)
}

// WarmPoiVectors embeds the reference dataset once before the server
// starts accepting traffic.
func WarmPoiVectors(lc fx.Lifecycle, svc *services.EmbeddingService, provider repositories.POIProvider) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := svc.WarmPoiVectors(ctx, provider.All()); err != nil {
				log.Printf("POI vector warm-up failed: %v", err)
			}
			return nil
		},
	})
}
