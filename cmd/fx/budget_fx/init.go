package budget_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideBudgetService)

func provideBudgetService(
	tripRepo repositories.TripRepository,
	expenseRepo repositories.ExpenseRepository) services.BudgetServiceInterface {

	return services.NewBudgetService(tripRepo, expenseRepo)
}
