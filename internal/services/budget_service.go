package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

// BudgetSummary is the categorized cost rollup of a single trip. Every
// amount is an exact decimal; callers convert to a display type only
// when serializing.
type BudgetSummary struct {
	TripID        uuid.UUID
	Transport     decimal.Decimal
	Stay          decimal.Decimal
	Meals         decimal.Decimal
	Activities    decimal.Decimal
	Other         decimal.Decimal
	Total         decimal.Decimal
	AveragePerDay decimal.Decimal
	OverBudget    bool
	BudgetLimit   *decimal.Decimal
}

// ComputeBudgetSummary aggregates the five cost buckets of a loaded trip
// graph: transport, stay and meals come from its stops, activities from
// every activity under those stops, other from the trip's direct
// expenses. The day count is inclusive of both endpoints and clamps to a
// minimum of one day, so a zero-length or inverted range never divides
// by zero. overrideLimit wins over the trip's own budget; with no limit
// known, OverBudget is false and BudgetLimit stays nil. Read-only and
// safe to call concurrently.
func ComputeBudgetSummary(trip *db_models.Trip, expenses []db_models.Expense, overrideLimit *decimal.Decimal) BudgetSummary {

	limit := overrideLimit
	if limit == nil {
		limit = trip.Budget
	}

	transport := decimal.Zero
	stay := decimal.Zero
	meals := decimal.Zero
	activities := decimal.Zero
	other := decimal.Zero

	for _, stop := range trip.Stops {
		transport = transport.Add(stop.TransportCost)
		stay = stay.Add(stop.StayCost)
		meals = meals.Add(stop.MealsCost)

		for _, act := range stop.Activities {
			activities = activities.Add(act.Cost)
		}
	}

	for _, expense := range expenses {
		other = other.Add(expense.Amount)
	}

	total := transport.Add(stay).Add(meals).Add(activities).Add(other)

	dayCount := utils.DaysInclusive(trip.StartDate, trip.EndDate)
	if dayCount < 1 {
		dayCount = 1
	}
	averagePerDay := total.Div(decimal.NewFromInt(int64(dayCount)))

	overBudget := limit != nil && total.GreaterThan(*limit)

	return BudgetSummary{
		TripID:        trip.ID,
		Transport:     transport,
		Stay:          stay,
		Meals:         meals,
		Activities:    activities,
		Other:         other,
		Total:         total,
		AveragePerDay: averagePerDay,
		OverBudget:    overBudget,
		BudgetLimit:   limit,
	}
}

type BudgetServiceInterface interface {
	GetBudgetSummary(ctx context.Context, userId string, tripId string, overrideLimit *decimal.Decimal) (*response_models.BudgetSummaryResponse, error)
}

type BudgetService struct {
	tripRepo    repositories.TripRepository
	expenseRepo repositories.ExpenseRepository
}

func NewBudgetService(tripRepo repositories.TripRepository, expenseRepo repositories.ExpenseRepository) BudgetServiceInterface {
	return &BudgetService{
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
	}
}

func (b *BudgetService) GetBudgetSummary(ctx context.Context, userId string, tripId string, overrideLimit *decimal.Decimal) (*response_models.BudgetSummaryResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := b.tripRepo.FindByIDWithDetails(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userUUID {
		return nil, utils.ErrTripNotFound
	}

	expenses, err := b.expenseRepo.ListByTripID(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := ComputeBudgetSummary(trip, expenses, overrideLimit)

	var limit *float64
	if summary.BudgetLimit != nil {
		v := summary.BudgetLimit.InexactFloat64()
		limit = &v
	}

	return &response_models.BudgetSummaryResponse{
		TripID:        summary.TripID.String(),
		Transport:     summary.Transport.InexactFloat64(),
		Stay:          summary.Stay.InexactFloat64(),
		Meals:         summary.Meals.InexactFloat64(),
		Activities:    summary.Activities.InexactFloat64(),
		Other:         summary.Other.InexactFloat64(),
		Total:         summary.Total.InexactFloat64(),
		AveragePerDay: summary.AveragePerDay.InexactFloat64(),
		OverBudget:    summary.OverBudget,
		BudgetLimit:   limit,
	}, nil
}
