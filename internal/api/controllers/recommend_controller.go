package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mumtrails/internal/models/request_models"
	"mumtrails/internal/models/response_models"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

func (r *RecommendController) Recommend(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Mood is required")
		return
	}
	if req.Location != nil && !req.Location.Valid() {
		utils.RespondError(c, http.StatusBadRequest, "Location must be valid lat/lng degrees")
		return
	}

	items, err := r.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.RecommendResponse{Items: items}, "Recommendations ranked successfully")
}
