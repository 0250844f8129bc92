package response_models

import "time"

type HistoryEntry struct {
	ID              string           `json:"id"`
	UserMessage     string           `json:"user_message"`
	BotResponse     string           `json:"bot_response"`
	Timestamp       time.Time        `json:"timestamp"`
	Recommendations []Recommendation `json:"recommendations"`
}
