package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Attraction struct {
	BaseModel
	CityID        uuid.UUID `gorm:"index"`
	Name          string
	Category      string
	Description   string
	EstimatedCost decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	Popularity    int
}
