package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mumtrails/internal/models/request_models"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (i *ItineraryController) BuildItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Mood, start location and time window are required")
		return
	}

	itinerary, err := i.itineraryService.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary built successfully")
}
