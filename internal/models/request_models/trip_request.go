package request_models

import "time"

type CreateTripRequest struct {
	Name          string    `json:"name" binding:"required"`
	StartDate     time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate       time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
	Description   string    `json:"description"`
	CoverPhotoURL string    `json:"cover_photo_url"`
	Budget        *float64  `json:"budget"`
}

// UpdateTripRequest is a partial update: only the fields present in the
// payload are applied, each through its own setter. Fields left nil are
// untouched.
type UpdateTripRequest struct {
	Name          *string    `json:"name"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Description   *string    `json:"description"`
	CoverPhotoURL *string    `json:"cover_photo_url"`
	Budget        *float64   `json:"budget"`
}
