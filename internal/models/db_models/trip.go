package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Trip struct {
	BaseModel
	UserID        uuid.UUID `gorm:"index"`
	Name          string
	StartDate     time.Time
	EndDate       time.Time
	Description   string
	CoverPhotoURL string
	Budget        *decimal.Decimal `gorm:"type:numeric(12,2)"`

	Stops    []Stop
	Expenses []Expense
	Shared   *SharedTrip
}
