package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mumtrails/internal/models/request_models"
	"mumtrails/internal/services"
	"mumtrails/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	answer, err := ch.chatService.Answer(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, answer, "Chat answered successfully")
}
