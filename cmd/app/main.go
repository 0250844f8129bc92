package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"vietravel/cmd/fx/chat_fx"
	"vietravel/cmd/fx/cluster_fx"
	"vietravel/cmd/fx/dataset_fx"
	"vietravel/cmd/fx/db_fx"
	"vietravel/cmd/fx/history_fx"
	"vietravel/cmd/fx/recommend_fx"
	"vietravel/internal/api/controllers"
	"vietravel/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		dataset_fx.Module,
		cluster_fx.Module,
		recommend_fx.Module,
		chat_fx.Module,
		history_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	chatController *controllers.ChatController,
	locationController *controllers.LocationController,
	clusterController *controllers.ClusterController,
	historyController *controllers.HistoryController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, chatController, locationController, clusterController, historyController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	locationController *controllers.LocationController,
	clusterController *controllers.ClusterController,
	historyController *controllers.HistoryController,
	healthController *controllers.HealthController) {

	r.POST("/chat", chatController.PostChat)
	r.GET("/location/:name", locationController.GetLocationDetail)

	clusterGroup := r.Group("/clusters")
	clusterGroup.GET("", clusterController.GetClusterAnalysis)
	clusterGroup.POST("/refresh", clusterController.RefreshClusters)

	r.GET("/history", historyController.GetChatHistory)
	r.GET("/health", healthController.GetHealth)
}
