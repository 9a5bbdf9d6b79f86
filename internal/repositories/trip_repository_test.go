package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&dbm.User{},
		&dbm.City{},
		&dbm.Attraction{},
		&dbm.Trip{},
		&dbm.Stop{},
		&dbm.Activity{},
		&dbm.Expense{},
		&dbm.SharedTrip{},
	)
	require.NoError(t, err)

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func timePtr(t time.Time) *time.Time { return &t }

// seedTripGraph persists a trip with two stops and three activities in a
// known itinerary order and returns it fully loaded.
func seedTripGraph(t *testing.T, db *gorm.DB, userID uuid.UUID) *dbm.Trip {
	city := dbm.City{Name: "Lisbon", Country: "Portugal"}
	require.NoError(t, db.Create(&city).Error)

	budget := money("500")
	trip := dbm.Trip{
		UserID:        userID,
		Name:          "Iberia",
		StartDate:     date(2024, 6, 1),
		EndDate:       date(2024, 6, 10),
		Description:   "Summer loop",
		CoverPhotoURL: "https://example.com/cover.jpg",
		Budget:        &budget,
	}
	require.NoError(t, db.Create(&trip).Error)

	first := dbm.Stop{
		TripID:        trip.ID,
		CityID:        city.ID,
		StartDate:     date(2024, 6, 1),
		EndDate:       date(2024, 6, 5),
		OrderIndex:    0,
		StayCost:      money("120.50"),
		TransportCost: money("60"),
		MealsCost:     money("45.25"),
	}
	second := dbm.Stop{
		TripID:        trip.ID,
		CityID:        city.ID,
		StartDate:     date(2024, 6, 5),
		EndDate:       date(2024, 6, 10),
		OrderIndex:    1,
		StayCost:      money("200"),
		TransportCost: money("30"),
		MealsCost:     money("80"),
	}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	duration := 90
	acts := []dbm.Activity{
		{
			StopID:          first.ID,
			Name:            "Tram tour",
			Type:            "sightseeing",
			StartTime:       timePtr(time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)),
			DurationMinutes: &duration,
			Cost:            money("25"),
			Notes:           "book ahead",
		},
		{
			StopID:    first.ID,
			Name:      "Fado night",
			StartTime: timePtr(time.Date(2024, 6, 2, 20, 0, 0, 0, time.UTC)),
			Cost:      money("40"),
		},
		{
			StopID: second.ID,
			Name:   "Beach day",
			Cost:   money("0"),
		},
	}
	for i := range acts {
		require.NoError(t, db.Create(&acts[i]).Error)
	}

	return &trip
}

func TestTripRepository_FindByIDWithDetails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	trip := seedTripGraph(t, db, userID)

	t.Run("loads the full graph in itinerary order", func(t *testing.T) {
		loaded, err := repo.FindByIDWithDetails(ctx, trip.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)

		require.Len(t, loaded.Stops, 2)
		assert.Equal(t, 0, loaded.Stops[0].OrderIndex)
		assert.Equal(t, 1, loaded.Stops[1].OrderIndex)

		require.Len(t, loaded.Stops[0].Activities, 2)
		assert.Equal(t, "Tram tour", loaded.Stops[0].Activities[0].Name)
		assert.Equal(t, "Fado night", loaded.Stops[0].Activities[1].Name)

		require.Len(t, loaded.Stops[1].Activities, 1)
		assert.Equal(t, "Beach day", loaded.Stops[1].Activities[0].Name)
	})

	t.Run("breaks order_index ties on start date", func(t *testing.T) {
		city := dbm.City{Name: "Porto", Country: "Portugal"}
		require.NoError(t, db.Create(&city).Error)

		tied := dbm.Stop{
			TripID:     trip.ID,
			CityID:     city.ID,
			StartDate:  date(2024, 5, 30),
			EndDate:    date(2024, 6, 1),
			OrderIndex: 0,
		}
		require.NoError(t, db.Create(&tied).Error)

		loaded, err := repo.FindByIDWithDetails(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Stops, 3)
		assert.Equal(t, tied.ID, loaded.Stops[0].ID)
	})

	t.Run("returns nil for an unknown trip", func(t *testing.T) {
		loaded, err := repo.FindByIDWithDetails(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}

func TestTripRepository_CopyTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	sourceOwner := uuid.New()
	newOwner := uuid.New()
	source := seedTripGraph(t, db, sourceOwner)

	copied, err := repo.CopyTrip(ctx, source.ID, newOwner)
	require.NoError(t, err)
	require.NotNil(t, copied)

	t.Run("copies the trip header for the new owner", func(t *testing.T) {
		assert.Equal(t, newOwner, copied.UserID)
		assert.Equal(t, "Copy of Iberia", copied.Name)
		assert.True(t, copied.StartDate.Equal(source.StartDate))
		assert.True(t, copied.EndDate.Equal(source.EndDate))
		assert.Equal(t, source.Description, copied.Description)
		assert.Equal(t, source.CoverPhotoURL, copied.CoverPhotoURL)
		require.NotNil(t, copied.Budget)
		assert.True(t, copied.Budget.Equal(*source.Budget))
		assert.NotEqual(t, source.ID, copied.ID)
	})

	loadedSource, err := repo.FindByIDWithDetails(ctx, source.ID)
	require.NoError(t, err)
	loadedCopy, err := repo.FindByIDWithDetails(ctx, copied.ID)
	require.NoError(t, err)

	t.Run("preserves stop order, fields and costs", func(t *testing.T) {
		require.Len(t, loadedCopy.Stops, len(loadedSource.Stops))
		for i := range loadedSource.Stops {
			src := loadedSource.Stops[i]
			dst := loadedCopy.Stops[i]

			assert.NotEqual(t, src.ID, dst.ID)
			assert.Equal(t, copied.ID, dst.TripID)
			assert.Equal(t, src.CityID, dst.CityID)
			assert.Equal(t, src.OrderIndex, dst.OrderIndex)
			assert.True(t, dst.StartDate.Equal(src.StartDate))
			assert.True(t, dst.EndDate.Equal(src.EndDate))
			assert.True(t, dst.StayCost.Equal(src.StayCost))
			assert.True(t, dst.TransportCost.Equal(src.TransportCost))
			assert.True(t, dst.MealsCost.Equal(src.MealsCost))
		}
	})

	t.Run("re-parents activities to the new stops", func(t *testing.T) {
		newStopIDs := make(map[uuid.UUID]bool, len(loadedCopy.Stops))
		sourceStopIDs := make(map[uuid.UUID]bool, len(loadedSource.Stops))
		for _, s := range loadedCopy.Stops {
			newStopIDs[s.ID] = true
		}
		for _, s := range loadedSource.Stops {
			sourceStopIDs[s.ID] = true
		}

		totalCopied := 0
		for i := range loadedSource.Stops {
			src := loadedSource.Stops[i]
			dst := loadedCopy.Stops[i]
			require.Len(t, dst.Activities, len(src.Activities))

			for j := range src.Activities {
				srcAct := src.Activities[j]
				dstAct := dst.Activities[j]
				totalCopied++

				assert.True(t, newStopIDs[dstAct.StopID])
				assert.False(t, sourceStopIDs[dstAct.StopID])
				assert.Equal(t, srcAct.Name, dstAct.Name)
				assert.Equal(t, srcAct.Type, dstAct.Type)
				assert.Equal(t, srcAct.DurationMinutes, dstAct.DurationMinutes)
				assert.Equal(t, srcAct.Notes, dstAct.Notes)
				assert.True(t, dstAct.Cost.Equal(srcAct.Cost))
				if srcAct.StartTime == nil {
					assert.Nil(t, dstAct.StartTime)
				} else {
					require.NotNil(t, dstAct.StartTime)
					assert.True(t, dstAct.StartTime.Equal(*srcAct.StartTime))
				}
			}
		}
		assert.Equal(t, 3, totalCopied)
	})

	t.Run("leaves the source graph untouched", func(t *testing.T) {
		require.Len(t, loadedSource.Stops, 2)
		assert.Equal(t, sourceOwner, loadedSource.UserID)
		assert.Equal(t, "Iberia", loadedSource.Name)
	})

	t.Run("fails for an unknown source trip", func(t *testing.T) {
		_, err := repo.CopyTrip(ctx, uuid.New(), newOwner)
		assert.Error(t, err)
	})
}

func TestTripRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	shareRepo := NewShareRepository(db)
	expenseRepo := NewExpenseRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	trip := seedTripGraph(t, db, userID)

	expense := dbm.Expense{TripID: trip.ID, Category: "visa", Amount: money("80")}
	require.NoError(t, expenseRepo.Insert(ctx, &expense))

	share := dbm.SharedTrip{TripID: trip.ID, ShareID: "cascade-token", IsPublic: true}
	require.NoError(t, shareRepo.Insert(ctx, &share))

	require.NoError(t, repo.DeleteCascade(ctx, trip.ID))

	t.Run("removes the trip", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, trip.ID)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("removes every descendant", func(t *testing.T) {
		var stopCount, activityCount, expenseCount, shareCount int64
		require.NoError(t, db.Model(&dbm.Stop{}).Where("trip_id = ?", trip.ID).Count(&stopCount).Error)
		require.NoError(t, db.Model(&dbm.Activity{}).Count(&activityCount).Error)
		require.NoError(t, db.Model(&dbm.Expense{}).Where("trip_id = ?", trip.ID).Count(&expenseCount).Error)
		require.NoError(t, db.Model(&dbm.SharedTrip{}).Where("trip_id = ?", trip.ID).Count(&shareCount).Error)

		assert.Zero(t, stopCount)
		assert.Zero(t, activityCount)
		assert.Zero(t, expenseCount)
		assert.Zero(t, shareCount)
	})

	t.Run("share token no longer resolves", func(t *testing.T) {
		found, err := shareRepo.FindPublicByShareID(ctx, "cascade-token")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := repo.DeleteCascade(ctx, trip.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTripRepository_ListByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	seedTripGraph(t, db, userID)

	empty := dbm.Trip{
		UserID:    userID,
		Name:      "Weekend",
		StartDate: date(2024, 7, 1),
		EndDate:   date(2024, 7, 2),
	}
	require.NoError(t, repo.Insert(ctx, &empty))

	rows, err := repo.ListByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Name] = row.StopCount
	}
	assert.Equal(t, 2, counts["Iberia"])
	assert.Equal(t, 0, counts["Weekend"])

	t.Run("ignores other users", func(t *testing.T) {
		rows, err := repo.ListByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
