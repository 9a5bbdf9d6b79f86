package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Activity struct {
	BaseModel
	StopID uuid.UUID `gorm:"index"`

	Name string
	Type string

	// Nil means the activity is unscheduled and belongs to no day.
	StartTime       *time.Time
	DurationMinutes *int

	Cost  decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	Notes string
}
