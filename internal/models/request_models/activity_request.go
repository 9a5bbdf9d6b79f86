package request_models

import "time"

type CreateActivityRequest struct {
	Name            string     `json:"name" binding:"required"`
	Type            string     `json:"type"`
	StartTime       *time.Time `json:"start_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	Cost            *float64   `json:"cost"`
	Notes           string     `json:"notes"`
}

type UpdateActivityRequest struct {
	Name            *string    `json:"name"`
	Type            *string    `json:"type"`
	StartTime       *time.Time `json:"start_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	Cost            *float64   `json:"cost"`
	Notes           *string    `json:"notes"`
}
