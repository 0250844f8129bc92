package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vietravel/internal/models/db_models"
	"vietravel/internal/models/response_models"
	"vietravel/internal/preferences"
	"vietravel/internal/repositories"
	"vietravel/pkg/utils"
)

const (
	defaultLLMTimeout = 10 * time.Second

	noMatchReply = "Xin lỗi, tôi không tìm thấy địa điểm phù hợp với yêu cầu của bạn. Bạn có thể thử mô tả chi tiết hơn không?"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, message, userID string) (*response_models.ChatResponse, error)
}

type ChatService struct {
	recommender RecommendServiceInterface
	intent      utils.IntentClientInterface
	history     repositories.ChatHistoryRepositoryInterface
	vocab       preferences.Vocabulary
	llmTimeout  time.Duration
	topN        int
}

func NewChatService(
	recommender RecommendServiceInterface,
	intent utils.IntentClientInterface,
	history repositories.ChatHistoryRepositoryInterface,
	vocab preferences.Vocabulary,
) ChatServiceInterface {
	return &ChatService{
		recommender: recommender,
		intent:      intent,
		history:     history,
		vocab:       vocab,
		llmTimeout:  defaultLLMTimeout,
		topN:        DefaultTopN,
	}
}

// Chat runs the full pipeline for one message: intent extraction (LLM with
// heuristic fallback), preference mapping, recommendation, reply generation
// (LLM with template fallback), and a best-effort history append. LLM
// failures never fail the chat.
func (s *ChatService) Chat(ctx context.Context, message, userID string) (*response_models.ChatResponse, error) {
	intentCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	intent, err := s.intent.ExtractTravelPreferences(intentCtx, message)
	cancel()
	if err != nil {
		log.Printf("Intent extraction failed, using heuristic parser: %v", err)
		intent = preferences.HeuristicParse(message, s.vocab)
	}

	prefs := preferences.Extract(intent, s.vocab)

	recs, err := s.recommender.Recommend(prefs, s.topN)
	if err != nil && !errors.Is(err, utils.ErrNoMatch) {
		return nil, err
	}

	var reply string
	if len(recs) == 0 {
		reply = noMatchReply
	} else {
		replyCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
		reply, err = s.intent.GenerateReply(replyCtx, message, recs, intent)
		cancel()
		if err != nil {
			log.Printf("Reply generation failed, using template: %v", err)
			reply = templateReply(recs)
		}
	}

	s.appendHistory(ctx, message, reply, recs, userID)

	return &response_models.ChatResponse{
		Response:        reply,
		Recommendations: recs,
		Preferences:     intent,
		Timestamp:       time.Now(),
	}, nil
}

func (s *ChatService) appendHistory(ctx context.Context, message, reply string, recs []response_models.Recommendation, userID string) {
	if userID == "" {
		userID = "anonymous"
	}
	recsJSON, err := json.Marshal(recs)
	if err != nil {
		recsJSON = []byte("[]")
	}
	entry := &db_models.ChatHistory{
		UserMessage:          message,
		BotResponse:          reply,
		RecommendedLocations: string(recsJSON),
		UserID:               userID,
	}
	if err := s.history.Create(ctx, entry); err != nil {
		log.Printf("Failed to append chat history: %v", err)
	}
}

// templateReply is the deterministic reply used when generation fails.
func templateReply(recs []response_models.Recommendation) string {
	var b strings.Builder
	b.WriteString("Dựa trên yêu cầu của bạn, tôi khuyến nghị các địa điểm sau:\n\n")
	for i, r := range recs {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, r.Name, r.Region)
		fmt.Fprintf(&b, "   Địa hình: %s\n\n", r.Terrain)
	}
	b.WriteString("Những địa điểm này có điều kiện thời tiết phù hợp với sở thích của bạn!")
	return b.String()
}
