package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	chatfx "mumtrails/cmd/fx/chat_fx"
	datasetfx "mumtrails/cmd/fx/dataset_fx"
	embeddingfx "mumtrails/cmd/fx/embedding_fx"
	itineraryfx "mumtrails/cmd/fx/itinerary_fx"
	recommendfx "mumtrails/cmd/fx/recommend_fx"
	travelfx "mumtrails/cmd/fx/travel_fx"
	weatherfx "mumtrails/cmd/fx/weather_fx"
	"mumtrails/internal/api/controllers"
	"mumtrails/internal/infra"
	"mumtrails/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	app := fx.New(
		fx.Provide(infra.LoadSettings),
		datasetfx.Module,
		embeddingfx.Module,
		recommendfx.Module,
		itineraryfx.Module,
		travelfx.Module,
		chatfx.Module,
		weatherfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, settings *infra.Settings) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("starting HTTP server on :%s", settings.Port)
				if err := engine.Run(":" + settings.Port); err != nil {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	recommendController *controllers.RecommendController,
	itineraryController *controllers.ItineraryController,
	travelController *controllers.TravelController,
	embedController *controllers.EmbedController,
	chatController *controllers.ChatController,
	weatherController *controllers.WeatherController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		recommendController,
		itineraryController,
		travelController,
		embedController,
		chatController,
		weatherController,
		healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendController *controllers.RecommendController,
	itineraryController *controllers.ItineraryController,
	travelController *controllers.TravelController,
	embedController *controllers.EmbedController,
	chatController *controllers.ChatController,
	weatherController *controllers.WeatherController,
	healthController *controllers.HealthController) {

	r.POST("/recommend", recommendController.Recommend)
	r.POST("/itinerary", itineraryController.BuildItinerary)
	r.POST("/travel-time", travelController.EstimateTravelTime)
	r.POST("/embed", embedController.Embed)
	r.POST("/chat", chatController.Chat)
	r.GET("/weather", weatherController.Current)
	r.GET("/health", healthController.Health)
}
