package controllers

import (
	"github.com/gin-gonic/gin"

	"vietravel/internal/dataset"
	"vietravel/internal/services"
	"vietravel/pkg/utils"
)

type HealthController struct {
	table          *dataset.Table
	clusterService services.ClusterServiceInterface
}

func NewHealthController(table *dataset.Table, clusterService services.ClusterServiceInterface) *HealthController {
	return &HealthController{table: table, clusterService: clusterService}
}

func (ctl *HealthController) GetHealth(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"status":         "healthy",
		"dataset_rows":   ctl.table.Len(),
		"clusters_ready": ctl.clusterService.Ready(),
	}, "Service is healthy")
}
