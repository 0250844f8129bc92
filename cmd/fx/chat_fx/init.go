package chat_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"vietravel/internal/api/controllers"
	"vietravel/internal/preferences"
	"vietravel/internal/repositories"
	"vietravel/internal/services"
	"vietravel/pkg/utils"
)

var Module = fx.Provide(
	ProvideIntentClient,
	ProvideChatService,
	ProvideChatController)

// IntentConfig holds configuration for intent clients
type IntentConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideIntentClient creates an intent client based on environment variables
func ProvideIntentClient() (utils.IntentClientInterface, error) {
	config := getIntentConfig()

	log.Printf("Initializing %s intent client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIIntentClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiIntentClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported intent provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideChatService(
	recommendService services.RecommendServiceInterface,
	intentClient utils.IntentClientInterface,
	historyRepo repositories.ChatHistoryRepositoryInterface,
) services.ChatServiceInterface {
	return services.NewChatService(
		recommendService,
		intentClient,
		historyRepo,
		preferences.DefaultVocabulary(),
	)
}

func ProvideChatController(
	chatService services.ChatServiceInterface,
) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

// getIntentConfig reads configuration from environment variables
func getIntentConfig() IntentConfig {
	provider := getEnvWithDefault("INTENT_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return IntentConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
