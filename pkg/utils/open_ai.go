package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"vietravel/internal/models/response_models"
	"vietravel/internal/preferences"
)

type OpenAIIntentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIIntentClient(apiKey, model string) *OpenAIIntentClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIIntentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIIntentClient) ExtractTravelPreferences(ctx context.Context, message string) (preferences.RawIntent, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		return preferences.RawIntent{}, fmt.Errorf("%w: openai extraction: %v", ErrIntentUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return preferences.RawIntent{}, fmt.Errorf("%w: openai returned no choices", ErrIntentUnavailable)
	}
	return parseIntentJSON(resp.Choices[0].Message.Content)
}

func (c *OpenAIIntentClient) GenerateReply(ctx context.Context, message string, recs []response_models.Recommendation, intent preferences.RawIntent) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: replySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildReplyPrompt(message, recs, intent)},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("openai reply: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai reply: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
