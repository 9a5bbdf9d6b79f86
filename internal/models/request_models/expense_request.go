package request_models

import "time"

type CreateExpenseRequest struct {
	ExpenseDate *time.Time `json:"expense_date"`
	Category    string     `json:"category" binding:"required"`
	Amount      float64    `json:"amount"`
	Notes       string     `json:"notes"`
}
