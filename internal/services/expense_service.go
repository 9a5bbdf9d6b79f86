package services

import (
	"context"

	"github.com/google/uuid"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type ExpenseServiceInterface interface {
	ListExpenses(ctx context.Context, userId string, tripId string) ([]response_models.ExpenseResponse, error)
	CreateExpense(ctx context.Context, userId string, tripId string, req request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, userId string, expenseId string) error
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	tripService TripServiceInterface
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	tripService TripServiceInterface) ExpenseServiceInterface {

	return &ExpenseService{
		expenseRepo: expenseRepo,
		tripService: tripService,
	}
}

func (e *ExpenseService) ListExpenses(ctx context.Context, userId string, tripId string) ([]response_models.ExpenseResponse, error) {

	trip, err := e.tripService.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	expenses, err := e.expenseRepo.ListByTripID(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, response_models.BuildExpenseResponse(&expenses[i]))
	}

	return out, nil
}

func (e *ExpenseService) CreateExpense(ctx context.Context, userId string, tripId string, req request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error) {

	trip, err := e.tripService.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	amount, err := requiredAmount(&req.Amount)
	if err != nil {
		return nil, err
	}

	expense := &db_models.Expense{
		TripID:      trip.ID,
		ExpenseDate: req.ExpenseDate,
		Category:    req.Category,
		Amount:      amount,
		Notes:       req.Notes,
	}

	if err := e.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildExpenseResponse(expense)
	return &resp, nil
}

func (e *ExpenseService) DeleteExpense(ctx context.Context, userId string, expenseId string) error {

	expenseUUID, err := uuid.Parse(expenseId)
	if err != nil {
		return utils.ErrInvalidInput
	}

	expense, err := e.expenseRepo.FindByID(ctx, expenseUUID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil {
		return utils.ErrExpenseNotFound
	}

	if _, err := e.tripService.GetOwnedTrip(ctx, userId, expense.TripID.String()); err != nil {
		return utils.ErrExpenseNotFound
	}

	if err := e.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
