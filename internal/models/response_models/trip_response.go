package response_models

import (
	dbm "wayfarer/internal/models/db_models"
	"wayfarer/pkg/utils"
)

type TripResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Description   string   `json:"description,omitempty"`
	CoverPhotoURL string   `json:"cover_photo_url,omitempty"`
	Budget        *float64 `json:"budget"`
}

type TripListItem struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	DestinationCount int      `json:"destination_count"`
	Budget           *float64 `json:"budget"`
}

func BuildTripResponse(trip *dbm.Trip) TripResponse {
	var budget *float64
	if trip.Budget != nil {
		v := trip.Budget.InexactFloat64()
		budget = &v
	}

	return TripResponse{
		ID:            trip.ID.String(),
		Name:          trip.Name,
		StartDate:     trip.StartDate.Format(utils.DateLayout),
		EndDate:       trip.EndDate.Format(utils.DateLayout),
		Description:   trip.Description,
		CoverPhotoURL: trip.CoverPhotoURL,
		Budget:        budget,
	}
}
