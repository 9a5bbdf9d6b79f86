package stop_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideStopRepo, provideStopService)

func provideStopRepo(db *gorm.DB) repositories.StopRepository {
	return repositories.NewStopRepository(db)
}

func provideStopService(
	stopRepo repositories.StopRepository,
	cityRepo repositories.CityRepository,
	tripService services.TripServiceInterface) services.StopServiceInterface {

	return services.NewStopService(stopRepo, cityRepo, tripService)
}
