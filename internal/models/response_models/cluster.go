package response_models

type ClusterInfo struct {
	ClusterID   int                `json:"cluster_id"`
	Locations   []string           `json:"locations"`
	Count       int                `json:"count"`
	AvgFeatures map[string]float64 `json:"avg_features"`
	Description string             `json:"description"`
}
