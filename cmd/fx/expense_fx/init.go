package expense_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideExpenseRepo, provideExpenseService)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(
	expenseRepo repositories.ExpenseRepository,
	tripService services.TripServiceInterface) services.ExpenseServiceInterface {

	return services.NewExpenseService(expenseRepo, tripService)
}
