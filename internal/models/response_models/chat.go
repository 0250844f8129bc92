package response_models

import (
	"time"

	"vietravel/internal/preferences"
)

type ChatResponse struct {
	Response        string                `json:"response"`
	Recommendations []Recommendation      `json:"recommendations"`
	Preferences     preferences.RawIntent `json:"preferences"`
	Timestamp       time.Time             `json:"timestamp"`
}
