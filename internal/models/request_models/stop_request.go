package request_models

import "time"

type CreateStopRequest struct {
	CityID        string    `json:"city_id" binding:"required"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	OrderIndex    *int      `json:"order_index"`
	StayCost      *float64  `json:"stay_cost"`
	TransportCost *float64  `json:"transport_cost"`
	MealsCost     *float64  `json:"meals_cost"`
}

type UpdateStopRequest struct {
	CityID        *string    `json:"city_id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	OrderIndex    *int       `json:"order_index"`
	StayCost      *float64   `json:"stay_cost"`
	TransportCost *float64   `json:"transport_cost"`
	MealsCost     *float64   `json:"meals_cost"`
}
