package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type TripWithStopCount struct {
	dbm.Trip
	StopCount int
}

type TripRepository interface {
	Insert(ctx context.Context, trip *dbm.Trip) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]TripWithStopCount, error)
	FindByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	FindByIDWithDetails(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	Save(ctx context.Context, trip *dbm.Trip) error
	DeleteCascade(ctx context.Context, tripID uuid.UUID) error
	CopyTrip(ctx context.Context, sourceTripID uuid.UUID, newUserID uuid.UUID) (*dbm.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// orderedStops is the persisted itinerary order: order_index is the sort
// key, ties break on start date, then insertion order.
func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, start_date ASC, created_at ASC")
}

// orderedActivities puts scheduled activities first by start time and
// keeps unscheduled ones in insertion order at the end.
func orderedActivities(db *gorm.DB) *gorm.DB {
	return db.Order("start_time ASC NULLS LAST, created_at ASC")
}

func (r *tripRepository) Insert(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]TripWithStopCount, error) {

	var rows []TripWithStopCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("trips.*, count(stops.id) AS stop_count").
		Joins("LEFT JOIN stops ON stops.trip_id = trips.id AND stops.deleted_at IS NULL").
		Where("trips.user_id = ?", userID).
		Group("trips.id").
		Order("trips.created_at DESC").
		Find(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *tripRepository) FindByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {

	var trip dbm.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) FindByIDWithDetails(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {

	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Stops", orderedStops).
		Preload("Stops.City").
		Preload("Stops.Activities", orderedActivities).
		First(&trip, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) Save(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// DeleteCascade removes the trip and everything it owns in one
// transaction: activities of its stops, the stops, its direct expenses
// and its share record. Nothing owned by the trip survives the delete.
func (r *tripRepository) DeleteCascade(ctx context.Context, tripID uuid.UUID) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip dbm.Trip
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}

		subStopIDs := tx.Model(&dbm.Stop{}).
			Select("id").
			Where("trip_id = ?", tripID)

		if err := tx.Where("stop_id IN (?)", subStopIDs).
			Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Stop{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.SharedTrip{}).Error; err != nil {
			return err
		}

		return tx.Delete(&trip).Error
	})
}

// CopyTrip clones the whole trip graph for a new owner inside a single
// transaction. Stops keep their city, dates, order index and cost fields;
// activities are recreated under the newly created stop, never the source
// one. Any failure rolls the whole copy back, so a half-populated trip is
// never observable.
func (r *tripRepository) CopyTrip(ctx context.Context, sourceTripID uuid.UUID, newUserID uuid.UUID) (*dbm.Trip, error) {

	var newTrip dbm.Trip

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source dbm.Trip
		if err := tx.
			Preload("Stops", orderedStops).
			Preload("Stops.Activities", orderedActivities).
			First(&source, "id = ?", sourceTripID).Error; err != nil {
			return err
		}

		newTrip = dbm.Trip{
			UserID:        newUserID,
			Name:          "Copy of " + source.Name,
			StartDate:     source.StartDate,
			EndDate:       source.EndDate,
			Description:   source.Description,
			CoverPhotoURL: source.CoverPhotoURL,
			Budget:        source.Budget,
		}
		if err := tx.Create(&newTrip).Error; err != nil {
			return err
		}

		for _, stop := range source.Stops {
			newStop := dbm.Stop{
				TripID:        newTrip.ID,
				CityID:        stop.CityID,
				StartDate:     stop.StartDate,
				EndDate:       stop.EndDate,
				OrderIndex:    stop.OrderIndex,
				StayCost:      stop.StayCost,
				TransportCost: stop.TransportCost,
				MealsCost:     stop.MealsCost,
			}
			if err := tx.Create(&newStop).Error; err != nil {
				return err
			}

			acts := make([]dbm.Activity, 0, len(stop.Activities))
			for _, act := range stop.Activities {
				acts = append(acts, dbm.Activity{
					StopID:          newStop.ID,
					Name:            act.Name,
					Type:            act.Type,
					StartTime:       act.StartTime,
					DurationMinutes: act.DurationMinutes,
					Cost:            act.Cost,
					Notes:           act.Notes,
				})
			}
			if len(acts) > 0 {
				if err := tx.Create(&acts).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &newTrip, nil
}
