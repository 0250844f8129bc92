package recommend_fx

import (
	"go.uber.org/fx"

	"vietravel/internal/api/controllers"
	"vietravel/internal/dataset"
	"vietravel/internal/services"
)

var Module = fx.Provide(
	ProvideRecommendService,
	ProvideLocationController)

func ProvideRecommendService(
	table *dataset.Table,
	clusterService services.ClusterServiceInterface,
) services.RecommendServiceInterface {
	return services.NewRecommendService(table, clusterService)
}

func ProvideLocationController(
	recommendService services.RecommendServiceInterface,
) *controllers.LocationController {
	return controllers.NewLocationController(recommendService)
}
