package request_models

type ChatMessage struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

// RefreshClustersRequest carries optional per-feature weights for a cluster
// recomputation, keyed by dataset column name. Absent features keep the
// uniform baseline weight.
type RefreshClustersRequest struct {
	Weights map[string]float64 `json:"weights"`
}
