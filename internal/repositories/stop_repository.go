package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type StopRepository interface {
	Insert(ctx context.Context, stop *dbm.Stop) error
	FindByID(ctx context.Context, stopID uuid.UUID) (*dbm.Stop, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Stop, error)
	CountByTripID(ctx context.Context, tripID uuid.UUID) (int64, error)
	Save(ctx context.Context, stop *dbm.Stop) error
	DeleteCascade(ctx context.Context, stopID uuid.UUID) error
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) Insert(ctx context.Context, stop *dbm.Stop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *stopRepository) FindByID(ctx context.Context, stopID uuid.UUID) (*dbm.Stop, error) {

	var stop dbm.Stop
	err := r.db.WithContext(ctx).First(&stop, "id = ?", stopID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stop, nil
}

func (r *stopRepository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]dbm.Stop, error) {

	var stops []dbm.Stop
	err := orderedStops(r.db.WithContext(ctx)).
		Preload("City").
		Where("trip_id = ?", tripID).
		Find(&stops).Error

	if err != nil {
		return nil, err
	}

	return stops, nil
}

func (r *stopRepository) CountByTripID(ctx context.Context, tripID uuid.UUID) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Stop{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error

	return count, err
}

func (r *stopRepository) Save(ctx context.Context, stop *dbm.Stop) error {
	return r.db.WithContext(ctx).Save(stop).Error
}

// DeleteCascade removes the stop together with its activities.
func (r *stopRepository) DeleteCascade(ctx context.Context, stopID uuid.UUID) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stop dbm.Stop
		if err := tx.First(&stop, "id = ?", stopID).Error; err != nil {
			return err
		}

		if err := tx.Where("stop_id = ?", stopID).
			Delete(&dbm.Activity{}).Error; err != nil {
			return err
		}

		return tx.Delete(&stop).Error
	})
}
