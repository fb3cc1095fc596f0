package controllers

import (
	"github.com/gin-gonic/gin"

	"mumtrails/internal/models/response_models"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

func (w *WeatherController) Current(c *gin.Context) {
	utils.RespondSuccess(c, w.weatherService.Current(), "Weather fetched successfully")
}

// HealthController reports liveness plus the active embedding backend.
type HealthController struct {
	embeddingService *services.EmbeddingService
}

func NewHealthController(embeddingService *services.EmbeddingService) *HealthController {
	return &HealthController{
		embeddingService: embeddingService,
	}
}

func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status:            "ok",
		EmbeddingProvider: h.embeddingService.Provider(),
		EmbeddingModel:    h.embeddingService.Model(),
	}, "")
}
