package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vietravel/internal/services"
	"vietravel/pkg/utils"
)

type LocationController struct {
	recommendService services.RecommendServiceInterface
}

func NewLocationController(recommendService services.RecommendServiceInterface) *LocationController {
	return &LocationController{recommendService: recommendService}
}

func (ctl *LocationController) GetLocationDetail(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location name is required")
		return
	}

	detail, err := ctl.recommendService.LocationDetail(name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Location detail fetched successfully")
}
