package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"vietravel/internal/models/response_models"
	"vietravel/internal/preferences"
)

type GeminiIntentClient struct {
	client *genai.Client
	model  string
}

func NewGeminiIntentClient(apiKey, model string) (*GeminiIntentClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiIntentClient{client: client, model: model}, nil
}

func (c *GeminiIntentClient) ExtractTravelPreferences(ctx context.Context, message string) (preferences.RawIntent, error) {
	m := c.client.GenerativeModel(c.model)
	// JSON-only output so no fence stripping is needed on the happy path.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)

	prompt := extractSystemPrompt + "\n\nTin nhắn người dùng: " + message
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return preferences.RawIntent{}, fmt.Errorf("%w: gemini extraction: %v", ErrIntentUnavailable, err)
	}
	content, err := geminiText(resp)
	if err != nil {
		return preferences.RawIntent{}, err
	}
	return parseIntentJSON(content)
}

func (c *GeminiIntentClient) GenerateReply(ctx context.Context, message string, recs []response_models.Recommendation, intent preferences.RawIntent) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)

	prompt := replySystemPrompt + "\n\n" + buildReplyPrompt(message, recs, intent)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini reply: %w", err)
	}
	return geminiText(resp)
}

func (c *GeminiIntentClient) Close() error {
	return c.client.Close()
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
