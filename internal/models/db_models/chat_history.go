package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatHistory is one entry of the append-only conversation log.
type ChatHistory struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserMessage          string    `gorm:"type:text;not null"`
	BotResponse          string    `gorm:"type:text;not null"`
	RecommendedLocations string    `gorm:"type:text"` // JSON snapshot of the recommendations
	UserID               string    `gorm:"default:anonymous"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (h *ChatHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
