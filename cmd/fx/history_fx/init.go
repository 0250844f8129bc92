package history_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vietravel/internal/api/controllers"
	"vietravel/internal/repositories"
	"vietravel/internal/services"
)

var Module = fx.Provide(
	ProvideChatHistoryRepository,
	ProvideHistoryService,
	ProvideHistoryController)

func ProvideChatHistoryRepository(db *gorm.DB) repositories.ChatHistoryRepositoryInterface {
	return repositories.NewChatHistoryRepository(db)
}

func ProvideHistoryService(repo repositories.ChatHistoryRepositoryInterface) services.HistoryServiceInterface {
	return services.NewHistoryService(repo)
}

func ProvideHistoryController(historyService services.HistoryServiceInterface) *controllers.HistoryController {
	return controllers.NewHistoryController(historyService)
}
