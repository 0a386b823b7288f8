package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideFeasibilityService, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideFeasibilityService(log *zap.Logger) services.FeasibilityServiceInterface {
	return services.NewFeasibilityService(log)
}

func provideTripService(tripRepo repositories.TripRepository, feasibilityService services.FeasibilityServiceInterface, log *zap.Logger) services.TripServiceInterface {

	return services.NewTripService(tripRepo, feasibilityService, log)
}
