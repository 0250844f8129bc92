package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vietravel/internal/models/request_models"
	"vietravel/internal/services"
	"vietravel/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

func (ctl *ChatController) PostChat(c *gin.Context) {
	var req request_models.ChatMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := ctl.chatService.Chat(c.Request.Context(), req.Message, req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Chat processed successfully")
}
