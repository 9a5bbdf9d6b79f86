package response_models

import (
	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type ExpenseResponse struct {
	ID          string  `json:"id"`
	TripID      string  `json:"trip_id"`
	ExpenseDate string  `json:"expense_date,omitempty"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes,omitempty"`
}

func BuildExpenseResponse(expense *dbm.Expense) ExpenseResponse {
	expenseDate := ""
	if expense.ExpenseDate != nil {
		expenseDate = expense.ExpenseDate.Format(utils.DateLayout)
	}

	return ExpenseResponse{
		ID:          expense.ID.String(),
		TripID:      expense.TripID.String(),
		ExpenseDate: expenseDate,
		Category:    expense.Category,
		Amount:      expense.Amount.InexactFloat64(),
		Notes:       expense.Notes,
	}
}
