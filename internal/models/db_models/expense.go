package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a miscellaneous cost attached to the trip directly,
// outside the stop stay/transport/meals and activity breakdown.
type Expense struct {
	BaseModel
	TripID uuid.UUID `gorm:"index"`

	ExpenseDate *time.Time
	Category    string
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	Notes       string
}
