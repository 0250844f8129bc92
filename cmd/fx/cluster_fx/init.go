package cluster_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"vietravel/internal/api/controllers"
	"vietravel/internal/clustering"
	"vietravel/internal/dataset"
	"vietravel/internal/services"
)

var Module = fx.Provide(
	ProvideClusterService,
	ProvideClusterController,
	ProvideHealthController)

func ProvideClusterService(table *dataset.Table) (services.ClusterServiceInterface, error) {
	cfg := clustering.DefaultConfig()
	if raw := os.Getenv("CLUSTER_COUNT"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil || k < 1 {
			log.Printf("Ignoring invalid CLUSTER_COUNT %q, using default %d", raw, cfg.K)
		} else {
			cfg.K = k
		}
	}

	return services.NewClusterService(table, cfg)
}

func ProvideClusterController(clusterService services.ClusterServiceInterface) *controllers.ClusterController {
	return controllers.NewClusterController(clusterService)
}

func ProvideHealthController(table *dataset.Table, clusterService services.ClusterServiceInterface) *controllers.HealthController {
	return controllers.NewHealthController(table, clusterService)
}
