package response_models

import (
	"time"

	dbm "wayfarer/internal/models/db_models"
)

type ActivityResponse struct {
	ID              string  `json:"id"`
	StopID          string  `json:"stop_id"`
	Name            string  `json:"name"`
	Type            string  `json:"type,omitempty"`
	StartTime       string  `json:"start_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes"`
	Cost            float64 `json:"cost"`
	Notes           string  `json:"notes,omitempty"`
}

func BuildActivityResponse(act *dbm.Activity) ActivityResponse {
	startTime := ""
	if act.StartTime != nil {
		startTime = act.StartTime.Format(time.RFC3339)
	}

	return ActivityResponse{
		ID:              act.ID.String(),
		StopID:          act.StopID.String(),
		Name:            act.Name,
		Type:            act.Type,
		StartTime:       startTime,
		DurationMinutes: act.DurationMinutes,
		Cost:            act.Cost.InexactFloat64(),
		Notes:           act.Notes,
	}
}
