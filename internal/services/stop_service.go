package services

import (
	"context"

	"github.com/google/uuid"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type StopServiceInterface interface {
	ListStops(ctx context.Context, userId string, tripId string) ([]response_models.StopResponse, error)
	CreateStop(ctx context.Context, userId string, tripId string, req request_models.CreateStopRequest) (*response_models.StopResponse, error)
	UpdateStop(ctx context.Context, userId string, stopId string, req request_models.UpdateStopRequest) (*response_models.StopResponse, error)
	DeleteStop(ctx context.Context, userId string, stopId string) error
	GetOwnedStop(ctx context.Context, userId string, stopId string) (*db_models.Stop, error)
}

type StopService struct {
	stopRepo    repositories.StopRepository
	cityRepo    repositories.CityRepository
	tripService TripServiceInterface
}

func NewStopService(
	stopRepo repositories.StopRepository,
	cityRepo repositories.CityRepository,
	tripService TripServiceInterface) StopServiceInterface {

	return &StopService{
		stopRepo:    stopRepo,
		cityRepo:    cityRepo,
		tripService: tripService,
	}
}

func (s *StopService) GetOwnedStop(ctx context.Context, userId string, stopId string) (*db_models.Stop, error) {

	stopUUID, err := uuid.Parse(stopId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	stop, err := s.stopRepo.FindByID(ctx, stopUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}

	if _, err := s.tripService.GetOwnedTrip(ctx, userId, stop.TripID.String()); err != nil {
		return nil, utils.ErrStopNotFound
	}

	return stop, nil
}

func (s *StopService) ListStops(ctx context.Context, userId string, tripId string) ([]response_models.StopResponse, error) {

	trip, err := s.tripService.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	stops, err := s.stopRepo.ListByTripID(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.StopResponse, 0, len(stops))
	for i := range stops {
		out = append(out, response_models.BuildStopResponse(&stops[i]))
	}

	return out, nil
}

func (s *StopService) CreateStop(ctx context.Context, userId string, tripId string, req request_models.CreateStopRequest) (*response_models.StopResponse, error) {

	trip, err := s.tripService.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	cityUUID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	city, err := s.cityRepo.FindByID(ctx, cityUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	stayCost, err := requiredAmount(req.StayCost)
	if err != nil {
		return nil, err
	}
	transportCost, err := requiredAmount(req.TransportCost)
	if err != nil {
		return nil, err
	}
	mealsCost, err := requiredAmount(req.MealsCost)
	if err != nil {
		return nil, err
	}

	// New stops go to the end of the itinerary unless the caller picks
	// a position explicitly.
	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		count, err := s.stopRepo.CountByTripID(ctx, trip.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		orderIndex = int(count)
	}

	stop := &db_models.Stop{
		TripID:        trip.ID,
		CityID:        city.ID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		OrderIndex:    orderIndex,
		StayCost:      stayCost,
		TransportCost: transportCost,
		MealsCost:     mealsCost,
	}

	if err := s.stopRepo.Insert(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	stop.City = *city
	resp := response_models.BuildStopResponse(stop)
	return &resp, nil
}

func (s *StopService) UpdateStop(ctx context.Context, userId string, stopId string, req request_models.UpdateStopRequest) (*response_models.StopResponse, error) {

	stop, err := s.GetOwnedStop(ctx, userId, stopId)
	if err != nil {
		return nil, err
	}

	if req.CityID != nil {
		cityUUID, err := uuid.Parse(*req.CityID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		city, err := s.cityRepo.FindByID(ctx, cityUUID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if city == nil {
			return nil, utils.ErrCityNotFound
		}
		stop.CityID = city.ID
	}
	if req.StartDate != nil {
		stop.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		stop.EndDate = *req.EndDate
	}
	if req.OrderIndex != nil {
		stop.OrderIndex = *req.OrderIndex
	}
	if req.StayCost != nil {
		cost, err := requiredAmount(req.StayCost)
		if err != nil {
			return nil, err
		}
		stop.StayCost = cost
	}
	if req.TransportCost != nil {
		cost, err := requiredAmount(req.TransportCost)
		if err != nil {
			return nil, err
		}
		stop.TransportCost = cost
	}
	if req.MealsCost != nil {
		cost, err := requiredAmount(req.MealsCost)
		if err != nil {
			return nil, err
		}
		stop.MealsCost = cost
	}

	if err := s.stopRepo.Save(ctx, stop); err != nil {
		return nil, utils.ErrDatabaseError
	}

	city, err := s.cityRepo.FindByID(ctx, stop.CityID)
	if err == nil && city != nil {
		stop.City = *city
	}

	resp := response_models.BuildStopResponse(stop)
	return &resp, nil
}

func (s *StopService) DeleteStop(ctx context.Context, userId string, stopId string) error {

	stop, err := s.GetOwnedStop(ctx, userId, stopId)
	if err != nil {
		return err
	}

	if err := s.stopRepo.DeleteCascade(ctx, stop.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
