package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wayfarer/internal/models/db_models"
)

type CityRepository interface {
	List(ctx context.Context, query string, country string) ([]dbm.City, error)
	FindByID(ctx context.Context, cityID uuid.UUID) (*dbm.City, error)
	ListAttractionsByCityID(ctx context.Context, cityID uuid.UUID) ([]dbm.Attraction, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context, query string, country string) ([]dbm.City, error) {

	tx := r.db.WithContext(ctx).Model(&dbm.City{})
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}
	if country != "" {
		tx = tx.Where("country = ?", country)
	}

	var cities []dbm.City
	err := tx.Order("popularity DESC, name ASC").Find(&cities).Error

	if err != nil {
		return nil, err
	}

	return cities, nil
}

func (r *cityRepository) FindByID(ctx context.Context, cityID uuid.UUID) (*dbm.City, error) {

	var city dbm.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", cityID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &city, nil
}

func (r *cityRepository) ListAttractionsByCityID(ctx context.Context, cityID uuid.UUID) ([]dbm.Attraction, error) {

	var attractions []dbm.Attraction
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("popularity DESC, name ASC").
		Find(&attractions).Error

	if err != nil {
		return nil, err
	}

	return attractions, nil
}
