package services

import (
	"context"
	"encoding/json"

	"vietravel/internal/models/response_models"
	"vietravel/internal/repositories"
	"vietravel/pkg/utils"
)

type HistoryServiceInterface interface {
	Recent(ctx context.Context, limit int) ([]response_models.HistoryEntry, error)
}

type HistoryService struct {
	repo repositories.ChatHistoryRepositoryInterface
}

func NewHistoryService(repo repositories.ChatHistoryRepositoryInterface) HistoryServiceInterface {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) Recent(ctx context.Context, limit int) ([]response_models.HistoryEntry, error) {
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidLimit
	}

	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		var recs []response_models.Recommendation
		if e.RecommendedLocations != "" {
			// Tolerate older rows with unparseable snapshots.
			_ = json.Unmarshal([]byte(e.RecommendedLocations), &recs)
		}
		out = append(out, response_models.HistoryEntry{
			ID:              e.ID.String(),
			UserMessage:     e.UserMessage,
			BotResponse:     e.BotResponse,
			Timestamp:       e.CreatedAt,
			Recommendations: recs,
		})
	}
	return out, nil
}
