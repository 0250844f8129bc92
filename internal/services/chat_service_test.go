package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vietravel/internal/models/db_models"
	"vietravel/internal/models/response_models"
	"vietravel/internal/preferences"
)

type fakeIntentClient struct {
	intent     preferences.RawIntent
	extractErr error
	reply      string
	replyErr   error
}

func (f *fakeIntentClient) ExtractTravelPreferences(ctx context.Context, message string) (preferences.RawIntent, error) {
	return f.intent, f.extractErr
}

func (f *fakeIntentClient) GenerateReply(ctx context.Context, message string, recs []response_models.Recommendation, intent preferences.RawIntent) (string, error) {
	return f.reply, f.replyErr
}

type fakeHistoryRepo struct {
	created   []*db_models.ChatHistory
	createErr error
	entries   []db_models.ChatHistory
	listErr   error
}

func (f *fakeHistoryRepo) Create(ctx context.Context, entry *db_models.ChatHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, entry)
	return nil
}

func (f *fakeHistoryRepo) ListRecent(ctx context.Context, limit int) ([]db_models.ChatHistory, error) {
	return f.entries, f.listErr
}

func newTestChatService(intent *fakeIntentClient, repo *fakeHistoryRepo) ChatServiceInterface {
	clusters := &fakeClusterService{assignments: map[string]int{"Sa Pa": 0, "Đà Lạt": 0, "Nha Trang": 2}}
	recommender := NewRecommendService(testTable(), clusters)
	return NewChatService(recommender, intent, repo, preferences.DefaultVocabulary())
}

func TestChat(t *testing.T) {
	t.Run("llm intent drives recommendations and reply", func(t *testing.T) {
		month := 11
		intent := &fakeIntentClient{
			intent: preferences.RawIntent{Month: &month, TemperaturePreference: "mát", RainTolerance: "ít"},
			reply:  "Bạn nên đi Đà Lạt!",
		}
		repo := &fakeHistoryRepo{}
		svc := newTestChatService(intent, repo)

		resp, err := svc.Chat(context.Background(), "tư vấn giúp mình", "user-1")
		require.NoError(t, err)

		assert.Equal(t, "Bạn nên đi Đà Lạt!", resp.Response)
		require.NotEmpty(t, resp.Recommendations)
		assert.Equal(t, "Đà Lạt", resp.Recommendations[0].Name)
		assert.Equal(t, intent.intent, resp.Preferences)
	})

	t.Run("extraction failure falls back to heuristic parser", func(t *testing.T) {
		intent := &fakeIntentClient{
			extractErr: errors.New("llm unavailable"),
			reply:      "ok",
		}
		svc := newTestChatService(intent, &fakeHistoryRepo{})

		resp, err := svc.Chat(context.Background(), "tháng 11 thích nơi mát", "")
		require.NoError(t, err)

		require.NotNil(t, resp.Preferences.Month)
		assert.Equal(t, 11, *resp.Preferences.Month)
		assert.Equal(t, "mát", resp.Preferences.TemperaturePreference)
		require.NotEmpty(t, resp.Recommendations)
		assert.Equal(t, "Đà Lạt", resp.Recommendations[0].Name)
	})

	t.Run("reply failure falls back to template", func(t *testing.T) {
		month := 11
		intent := &fakeIntentClient{
			intent:   preferences.RawIntent{Month: &month, TemperaturePreference: "mát"},
			replyErr: errors.New("llm unavailable"),
		}
		svc := newTestChatService(intent, &fakeHistoryRepo{})

		resp, err := svc.Chat(context.Background(), "nơi mát tháng 11", "")
		require.NoError(t, err)

		assert.Contains(t, resp.Response, "tôi khuyến nghị các địa điểm sau")
		assert.Contains(t, resp.Response, resp.Recommendations[0].Name)
	})

	t.Run("no candidate month yields apology without llm reply", func(t *testing.T) {
		month := 2
		intent := &fakeIntentClient{
			intent:   preferences.RawIntent{Month: &month},
			replyErr: errors.New("must not be called"),
		}
		svc := newTestChatService(intent, &fakeHistoryRepo{})

		resp, err := svc.Chat(context.Background(), "tháng 2 đi đâu", "")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(resp.Response, "Xin lỗi"))
		assert.Empty(t, resp.Recommendations)
	})

	t.Run("history appended with defaults and snapshot", func(t *testing.T) {
		month := 11
		intent := &fakeIntentClient{
			intent: preferences.RawIntent{Month: &month},
			reply:  "đây nhé",
		}
		repo := &fakeHistoryRepo{}
		svc := newTestChatService(intent, repo)

		_, err := svc.Chat(context.Background(), "tháng 11", "")
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		entry := repo.created[0]
		assert.Equal(t, "tháng 11", entry.UserMessage)
		assert.Equal(t, "đây nhé", entry.BotResponse)
		assert.Equal(t, "anonymous", entry.UserID)
		assert.Contains(t, entry.RecommendedLocations, "Đà Lạt")
	})

	t.Run("history append failure does not fail the chat", func(t *testing.T) {
		month := 11
		intent := &fakeIntentClient{
			intent: preferences.RawIntent{Month: &month},
			reply:  "ok",
		}
		repo := &fakeHistoryRepo{createErr: errors.New("db down")}
		svc := newTestChatService(intent, repo)

		resp, err := svc.Chat(context.Background(), "tháng 11", "user-2")
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Response)
	})
}

func TestTemplateReply(t *testing.T) {
	recs := []response_models.Recommendation{
		{Name: "Sa Pa", Region: "Lào Cai", Terrain: "miền núi"},
		{Name: "Đà Lạt", Region: "Lâm Đồng", Terrain: "miền núi"},
		{Name: "Nha Trang", Region: "Khánh Hòa", Terrain: "ven biển"},
		{Name: "Huế", Region: "Thừa Thiên Huế", Terrain: "đồng bằng"},
	}

	reply := templateReply(recs)
	assert.Contains(t, reply, "1. Sa Pa - Lào Cai")
	assert.Contains(t, reply, "3. Nha Trang")
	// Only the top three make the template.
	assert.NotContains(t, reply, "Huế")
}
