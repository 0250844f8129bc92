package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vietravel/internal/dataset"
	"vietravel/internal/models/request_models"
	"vietravel/internal/services"
	"vietravel/pkg/utils"
)

type ClusterController struct {
	clusterService services.ClusterServiceInterface
}

func NewClusterController(clusterService services.ClusterServiceInterface) *ClusterController {
	return &ClusterController{clusterService: clusterService}
}

func (ctl *ClusterController) GetClusterAnalysis(c *gin.Context) {
	clusters, err := ctl.clusterService.Analysis()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"clusters": clusters}, "Cluster analysis fetched successfully")
}

// RefreshClusters recomputes the cluster set, optionally with caller-supplied
// feature weights keyed by dataset column name.
func (ctl *ClusterController) RefreshClusters(c *gin.Context) {
	var req request_models.RefreshClustersRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	weights := dataset.UniformWeights()
	for name, w := range req.Weights {
		found := false
		for i, colName := range dataset.FeatureNames {
			if colName == name {
				weights[i] = w
				found = true
				break
			}
		}
		if !found {
			utils.RespondError(c, http.StatusBadRequest, "Unknown feature: "+name)
			return
		}
	}

	if err := ctl.clusterService.Refresh(weights); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Clusters recomputed successfully")
}
