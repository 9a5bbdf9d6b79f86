package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *dbm.Activity) error
	FindByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error)
	ListByStopID(ctx context.Context, stopID uuid.UUID) ([]dbm.Activity, error)
	Save(ctx context.Context, activity *dbm.Activity) error
	Delete(ctx context.Context, activityID uuid.UUID) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error) {

	var activity dbm.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", activityID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]dbm.Activity, error) {

	var activities []dbm.Activity
	err := orderedActivities(r.db.WithContext(ctx)).
		Where("stop_id = ?", stopID).
		Find(&activities).Error

	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) Save(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, activityID uuid.UUID) error {

	result := r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Delete(&dbm.Activity{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
