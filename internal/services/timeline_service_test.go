package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

func TestGroupActivitiesByDay(t *testing.T) {

	t.Run("buckets by calendar date across stops", func(t *testing.T) {
		trip := &db_models.Trip{
			Stops: []db_models.Stop{
				{
					Activities: []db_models.Activity{
						{Name: "Breakfast market", StartTime: tsPtr(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))},
						{Name: "Castle", StartTime: tsPtr(time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC))},
					},
				},
				{
					Activities: []db_models.Activity{
						{Name: "Boat ride", StartTime: tsPtr(time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC))},
					},
				},
			},
		}

		got := GroupActivitiesByDay(trip)

		require.Len(t, got, 2)
		require.Len(t, got["2024-06-01"], 2)
		assert.Equal(t, "Breakfast market", got["2024-06-01"][0].Name)
		assert.Equal(t, "Castle", got["2024-06-01"][1].Name)
		require.Len(t, got["2024-06-02"], 1)
		assert.Equal(t, "Boat ride", got["2024-06-02"][0].Name)
	})

	t.Run("unscheduled activities appear in no bucket", func(t *testing.T) {
		trip := &db_models.Trip{
			Stops: []db_models.Stop{
				{
					Activities: []db_models.Activity{
						{Name: "Someday"},
						{Name: "Planned", StartTime: tsPtr(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))},
					},
				},
			},
		}

		got := GroupActivitiesByDay(trip)

		require.Len(t, got, 1)
		require.Len(t, got["2024-06-03"], 1)
		assert.Equal(t, "Planned", got["2024-06-03"][0].Name)
	})

	t.Run("empty trip yields an empty map", func(t *testing.T) {
		got := GroupActivitiesByDay(&db_models.Trip{})
		assert.Empty(t, got)
	})
}

func TestTimelineService_GetTimeline(t *testing.T) {
	db := setupServiceDB(t)
	tripRepo := repositories.NewTripRepository(db)
	svc := NewTimelineService(tripRepo)
	ctx := context.Background()

	owner := uuid.New()
	trip := db_models.Trip{
		UserID:    owner,
		Name:      "Timeline",
		StartDate: day(2024, 6, 1),
		EndDate:   day(2024, 6, 3),
	}
	require.NoError(t, db.Create(&trip).Error)

	city := db_models.City{Name: "Prague", Country: "Czechia"}
	require.NoError(t, db.Create(&city).Error)

	stop := db_models.Stop{
		TripID:    trip.ID,
		CityID:    city.ID,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
	}
	require.NoError(t, db.Create(&stop).Error)

	// inserted out of order; the timeline must come back sorted by start time
	late := db_models.Activity{StopID: stop.ID, Name: "Dinner", StartTime: tsPtr(time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC))}
	early := db_models.Activity{StopID: stop.ID, Name: "Walking tour", StartTime: tsPtr(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))}
	unscheduled := db_models.Activity{StopID: stop.ID, Name: "Gallery"}
	require.NoError(t, db.Create(&late).Error)
	require.NoError(t, db.Create(&early).Error)
	require.NoError(t, db.Create(&unscheduled).Error)

	t.Run("groups and orders persisted activities", func(t *testing.T) {
		got, err := svc.GetTimeline(ctx, owner.String(), trip.ID.String())
		require.NoError(t, err)

		require.Len(t, got, 1)
		dayActs := got["2024-06-01"]
		require.Len(t, dayActs, 2)
		assert.Equal(t, "Walking tour", dayActs[0].Name)
		assert.Equal(t, "Dinner", dayActs[1].Name)
	})

	t.Run("other users cannot read the timeline", func(t *testing.T) {
		_, err := svc.GetTimeline(ctx, uuid.NewString(), trip.ID.String())
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})
}
