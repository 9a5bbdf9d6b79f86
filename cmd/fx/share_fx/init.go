package share_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideShareRepo, provideShareService)

func provideShareRepo(db *gorm.DB) repositories.ShareRepository {
	return repositories.NewShareRepository(db)
}

func provideShareService(
	shareRepo repositories.ShareRepository,
	tripRepo repositories.TripRepository,
	tripService services.TripServiceInterface) services.ShareServiceInterface {

	return services.NewShareService(shareRepo, tripRepo, tripService)
}
