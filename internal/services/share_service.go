package services

import (
	"context"
	"log"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

const shareTokenBytes = 8

type ShareServiceInterface interface {
	GetOrCreateShare(ctx context.Context, userId string, tripId string) (*response_models.ShareResponse, error)
	GetPublicTrip(ctx context.Context, shareId string) (*response_models.PublicTripResponse, error)
	CopySharedTrip(ctx context.Context, shareId string, newOwnerId string) (*response_models.CopyTripResponse, error)
}

type ShareService struct {
	shareRepo   repositories.ShareRepository
	tripRepo    repositories.TripRepository
	tripService TripServiceInterface
}

func NewShareService(
	shareRepo repositories.ShareRepository,
	tripRepo repositories.TripRepository,
	tripService TripServiceInterface) ShareServiceInterface {

	return &ShareService{
		shareRepo:   shareRepo,
		tripRepo:    tripRepo,
		tripService: tripService,
	}
}

// GetOrCreateShare is find-or-create: the first call mints the public
// token, every later call returns the same record. When two requests
// race, the unique index on trip_id rejects the second insert and the
// loser refetches the winner's row.
func (s *ShareService) GetOrCreateShare(ctx context.Context, userId string, tripId string) (*response_models.ShareResponse, error) {

	trip, err := s.tripService.GetOwnedTrip(ctx, userId, tripId)
	if err != nil {
		return nil, err
	}

	share, err := s.shareRepo.FindByTripID(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if share == nil {
		token, err := utils.GenerateShareToken(shareTokenBytes)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		share = &db_models.SharedTrip{
			TripID:   trip.ID,
			ShareID:  token,
			IsPublic: true,
		}

		if err := s.shareRepo.Insert(ctx, share); err != nil {
			if !repositories.IsUniqueViolation(err) {
				return nil, utils.ErrDatabaseError
			}

			log.Printf("Concurrent share creation for trip %s, reusing existing record", trip.ID)
			share, err = s.shareRepo.FindByTripID(ctx, trip.ID)
			if err != nil || share == nil {
				return nil, utils.ErrDatabaseError
			}
		}
	}

	return &response_models.ShareResponse{
		ShareID:  share.ShareID,
		IsPublic: share.IsPublic,
	}, nil
}

// resolvePublicTrip maps a share token to its trip. Unknown tokens,
// private shares and shares whose trip has been deleted all come back
// as plain absence.
func (s *ShareService) resolvePublicTrip(ctx context.Context, shareId string) (*db_models.Trip, error) {

	share, err := s.shareRepo.FindPublicByShareID(ctx, shareId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if share == nil {
		return nil, utils.ErrShareNotFound
	}

	trip, err := s.tripRepo.FindByIDWithDetails(ctx, share.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrShareNotFound
	}

	return trip, nil
}

func (s *ShareService) GetPublicTrip(ctx context.Context, shareId string) (*response_models.PublicTripResponse, error) {

	trip, err := s.resolvePublicTrip(ctx, shareId)
	if err != nil {
		return nil, err
	}

	stops := make([]response_models.StopResponse, 0, len(trip.Stops))
	for i := range trip.Stops {
		stops = append(stops, response_models.BuildStopResponse(&trip.Stops[i]))
	}

	return &response_models.PublicTripResponse{
		Trip:  response_models.BuildTripResponse(trip),
		Stops: stops,
	}, nil
}

func (s *ShareService) CopySharedTrip(ctx context.Context, shareId string, newOwnerId string) (*response_models.CopyTripResponse, error) {

	trip, err := s.resolvePublicTrip(ctx, shareId)
	if err != nil {
		return nil, err
	}

	newTrip, err := s.tripService.CopyTrip(ctx, trip.ID, newOwnerId)
	if err != nil {
		return nil, err
	}

	return &response_models.CopyTripResponse{
		NewTripID: newTrip.ID,
	}, nil
}
