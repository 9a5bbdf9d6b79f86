package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Stop struct {
	BaseModel
	TripID uuid.UUID `gorm:"index"`
	CityID uuid.UUID `gorm:"index"`

	StartDate time.Time
	EndDate   time.Time

	// Itinerary position. Used purely as a sort key; duplicates are
	// tolerated and ties break on start date, then insertion order.
	OrderIndex int `gorm:"default:0"`

	StayCost      decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	TransportCost decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	MealsCost     decimal.Decimal `gorm:"type:numeric(12,2);default:0"`

	City       City
	Activities []Activity
}
