package services

import (
	"context"

	"github.com/google/uuid"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type CityServiceInterface interface {
	ListCities(ctx context.Context, query string, country string) ([]response_models.CityResponse, error)
	ListAttractions(ctx context.Context, cityId string) ([]response_models.AttractionResponse, error)
}

type CityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityServiceInterface {
	return &CityService{
		cityRepo: cityRepo,
	}
}

func (c *CityService) ListCities(ctx context.Context, query string, country string) ([]response_models.CityResponse, error) {

	cities, err := c.cityRepo.List(ctx, query, country)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, response_models.BuildCityResponse(&cities[i]))
	}

	return out, nil
}

func (c *CityService) ListAttractions(ctx context.Context, cityId string) ([]response_models.AttractionResponse, error) {

	cityUUID, err := uuid.Parse(cityId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	city, err := c.cityRepo.FindByID(ctx, cityUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	attractions, err := c.cityRepo.ListAttractionsByCityID(ctx, city.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for i := range attractions {
		out = append(out, response_models.BuildAttractionResponse(&attractions[i]))
	}

	return out, nil
}
