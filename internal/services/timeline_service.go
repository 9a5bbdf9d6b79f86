package services

import (
	"context"

	"github.com/google/uuid"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

// GroupActivitiesByDay buckets every scheduled activity of the trip by
// the calendar date of its start time, across all stops. Activities
// without a start time are unscheduled and appear in no bucket. Order
// within a bucket follows the load order of the input; the input is not
// mutated.
func GroupActivitiesByDay(trip *db_models.Trip) map[string][]db_models.Activity {

	byDay := make(map[string][]db_models.Activity)
	for _, stop := range trip.Stops {
		for _, act := range stop.Activities {
			if act.StartTime == nil {
				continue
			}
			key := utils.DayKey(*act.StartTime)
			byDay[key] = append(byDay[key], act)
		}
	}

	return byDay
}

type TimelineServiceInterface interface {
	GetTimeline(ctx context.Context, userId string, tripId string) (map[string][]response_models.ActivityResponse, error)
}

type TimelineService struct {
	tripRepo repositories.TripRepository
}

func NewTimelineService(tripRepo repositories.TripRepository) TimelineServiceInterface {
	return &TimelineService{
		tripRepo: tripRepo,
	}
}

func (t *TimelineService) GetTimeline(ctx context.Context, userId string, tripId string) (map[string][]response_models.ActivityResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := t.tripRepo.FindByIDWithDetails(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userUUID {
		return nil, utils.ErrTripNotFound
	}

	grouped := GroupActivitiesByDay(trip)

	out := make(map[string][]response_models.ActivityResponse, len(grouped))
	for day, acts := range grouped {
		items := make([]response_models.ActivityResponse, 0, len(acts))
		for i := range acts {
			items = append(items, response_models.BuildActivityResponse(&acts[i]))
		}
		out[day] = items
	}

	return out, nil
}
