package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vietravel/internal/services"
	"vietravel/pkg/utils"
)

const defaultHistoryLimit = 10

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{historyService: historyService}
}

func (ctl *HistoryController) GetChatHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := ctl.historyService.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"history": entries, "count": len(entries)}, "Chat history fetched successfully")
}
