package response_models

import (
	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type StopResponse struct {
	ID            string  `json:"id"`
	TripID        string  `json:"trip_id"`
	CityID        string  `json:"city_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	OrderIndex    int     `json:"order_index"`
	StayCost      float64 `json:"stay_cost"`
	TransportCost float64 `json:"transport_cost"`
	MealsCost     float64 `json:"meals_cost"`
	CityName      string  `json:"city_name,omitempty"`
	CityCountry   string  `json:"city_country,omitempty"`
}

func BuildStopResponse(stop *dbm.Stop) StopResponse {
	return StopResponse{
		ID:            stop.ID.String(),
		TripID:        stop.TripID.String(),
		CityID:        stop.CityID.String(),
		StartDate:     stop.StartDate.Format(utils.DateLayout),
		EndDate:       stop.EndDate.Format(utils.DateLayout),
		OrderIndex:    stop.OrderIndex,
		StayCost:      stop.StayCost.InexactFloat64(),
		TransportCost: stop.TransportCost.InexactFloat64(),
		MealsCost:     stop.MealsCost.InexactFloat64(),
		CityName:      stop.City.Name,
		CityCountry:   stop.City.Country,
	}
}
