package repositories

import (
	"context"

	"gorm.io/gorm"

	"vietravel/internal/models/db_models"
)

type ChatHistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *db_models.ChatHistory) error
	ListRecent(ctx context.Context, limit int) ([]db_models.ChatHistory, error)
}

type ChatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) *ChatHistoryRepository {
	return &ChatHistoryRepository{db: db}
}

func (r *ChatHistoryRepository) Create(ctx context.Context, entry *db_models.ChatHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ChatHistoryRepository) ListRecent(ctx context.Context, limit int) ([]db_models.ChatHistory, error) {
	var entries []db_models.ChatHistory
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
