package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mumtrails/internal/models/request_models"
	"mumtrails/internal/models/response_models"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

type EmbedController struct {
	embeddingService *services.EmbeddingService
}

func NewEmbedController(embeddingService *services.EmbeddingService) *EmbedController {
	return &EmbedController{
		embeddingService: embeddingService,
	}
}

func (e *EmbedController) Embed(c *gin.Context) {
	var req request_models.EmbedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vectors := e.embeddingService.EmbedTexts(c.Request.Context(), req.Texts)
	utils.RespondSuccess(c, response_models.EmbedResponse{Vectors: vectors}, "Texts embedded successfully")
}
