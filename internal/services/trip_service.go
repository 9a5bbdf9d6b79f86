package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userId string) ([]response_models.TripListItem, error)
	CreateTrip(ctx context.Context, userId string, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userId string, tripId string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
	CopyTrip(ctx context.Context, sourceTripId uuid.UUID, newOwnerId string) (*response_models.TripResponse, error)
	GetOwnedTrip(ctx context.Context, userId string, tripId string) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

// GetOwnedTrip resolves a trip and enforces ownership; a trip belonging
// to another user is indistinguishable from a missing one.
func (t *TripService) GetOwnedTrip(ctx context.Context, userId string, tripId string) (*db_models.Trip, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripUUID, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := t.tripRepo.FindByID(ctx, tripUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != userUUID {
		return nil, utils.ErrTripNotFound
	}

	return trip, nil
}

func (t *TripService) ListTrips(ctx context.Context, userId string) ([]response_models.TripListItem, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	rows, err := t.tripRepo.ListByUserID(ctx, userUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripListItem, 0, len(rows))
	for _, row := range rows {
		var budget *float64
		if row.Budget != nil {
			v := row.Budget.InexactFloat64()
			budget = &v
		}
		out = append(out, response_models.TripListItem{
			ID:               row.ID.String(),
			Name:             row.Name,
			StartDate:        row.StartDate.Format(utils.DateLayout),
			EndDate:          row.EndDate.Format(utils.DateLayout),
			DestinationCount: row.StopCount,
			Budget:           budget,
		})
	}

	return out, nil
}

func (t *TripService) CreateTrip(ctx context.Context, userId string, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	budget, err := optionalAmount(req.Budget)
	if err != nil {
		return nil, err
	}

	trip := &db_models.Trip{
		UserID:        userUUID,
		Name:          req.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Description:   req.Description,
		CoverPhotoURL: req.CoverPhotoURL,
		Budget:        budget,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error) {

	trip, err := t.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

// UpdateTrip applies a partial payload field by field. Only recognized
// fields are settable; absent ones keep their stored value.
func (t *TripService) UpdateTrip(ctx context.Context, userId string, tripId string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {

	trip, err := t.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.CoverPhotoURL != nil {
		trip.CoverPhotoURL = *req.CoverPhotoURL
	}
	if req.Budget != nil {
		budget, err := optionalAmount(req.Budget)
		if err != nil {
			return nil, err
		}
		trip.Budget = budget
	}

	if err := t.tripRepo.Save(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildTripResponse(trip)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {

	trip, err := t.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return err
	}

	if err := t.tripRepo.DeleteCascade(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (t *TripService) CopyTrip(ctx context.Context, sourceTripId uuid.UUID, newOwnerId string) (*response_models.TripResponse, error) {

	ownerUUID, err := uuid.Parse(newOwnerId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	newTrip, err := t.tripRepo.CopyTrip(ctx, sourceTripId, ownerUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildTripResponse(newTrip)
	return &resp, nil
}

// optionalAmount turns an optional request amount into an exact decimal,
// rejecting negative money.
func optionalAmount(value *float64) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	if *value < 0 {
		return nil, utils.ErrInvalidInput
	}
	d := decimal.NewFromFloat(*value)
	return &d, nil
}

// requiredAmount is optionalAmount for fields that default to zero.
func requiredAmount(value *float64) (decimal.Decimal, error) {
	d, err := optionalAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if d == nil {
		return decimal.Zero, nil
	}
	return *d, nil
}
