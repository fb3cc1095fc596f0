package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mumtrails/internal/models/request_models"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

type TravelController struct {
	travelService services.TravelServiceInterface
}

func NewTravelController(travelService services.TravelServiceInterface) *TravelController {
	return &TravelController{
		travelService: travelService,
	}
}

func (t *TravelController) EstimateTravelTime(c *gin.Context) {
	var req request_models.TravelTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	for _, coord := range req.Coords {
		if !coord.Valid() {
			utils.RespondError(c, http.StatusBadRequest, "Coordinates must be valid lat/lng degrees")
			return
		}
	}

	estimate, err := t.travelService.Estimate(c.Request.Context(), req.Coords)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, estimate, "Travel time estimated successfully")
}
