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

type ActivityServiceInterface interface {
	ListActivities(ctx context.Context, userId string, stopId string) ([]response_models.ActivityResponse, error)
	CreateActivity(ctx context.Context, userId string, stopId string, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, userId string, activityId string, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, userId string, activityId string) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	stopService  StopServiceInterface
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	stopService StopServiceInterface) ActivityServiceInterface {

	return &ActivityService{
		activityRepo: activityRepo,
		stopService:  stopService,
	}
}

func (a *ActivityService) getOwnedActivity(ctx context.Context, userId string, activityId string) (*db_models.Activity, error) {

	activityUUID, err := uuid.Parse(activityId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	activity, err := a.activityRepo.FindByID(ctx, activityUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if _, err := a.stopService.GetOwnedStop(ctx, userId, activity.StopID.String()); err != nil {
		return nil, utils.ErrActivityNotFound
	}

	return activity, nil
}

func (a *ActivityService) ListActivities(ctx context.Context, userId string, stopId string) ([]response_models.ActivityResponse, error) {

	stop, err := a.stopService.GetOwnedStop(ctx, userId, stopId)
	if err != nil {
		return nil, err
	}

	activities, err := a.activityRepo.ListByStopID(ctx, stop.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, response_models.BuildActivityResponse(&activities[i]))
	}

	return out, nil
}

func (a *ActivityService) CreateActivity(ctx context.Context, userId string, stopId string, req request_models.CreateActivityRequest) (*response_models.ActivityResponse, error) {

	stop, err := a.stopService.GetOwnedStop(ctx, userId, stopId)
	if err != nil {
		return nil, err
	}

	cost, err := requiredAmount(req.Cost)
	if err != nil {
		return nil, err
	}

	activity := &db_models.Activity{
		StopID:          stop.ID,
		Name:            req.Name,
		Type:            req.Type,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Cost:            cost,
		Notes:           req.Notes,
	}

	if err := a.activityRepo.Insert(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildActivityResponse(activity)
	return &resp, nil
}

func (a *ActivityService) UpdateActivity(ctx context.Context, userId string, activityId string, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error) {

	activity, err := a.getOwnedActivity(ctx, userId, activityId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Type != nil {
		activity.Type = *req.Type
	}
	if req.StartTime != nil {
		activity.StartTime = req.StartTime
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = req.DurationMinutes
	}
	if req.Cost != nil {
		cost, err := requiredAmount(req.Cost)
		if err != nil {
			return nil, err
		}
		activity.Cost = cost
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	if err := a.activityRepo.Save(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildActivityResponse(activity)
	return &resp, nil
}

func (a *ActivityService) DeleteActivity(ctx context.Context, userId string, activityId string) error {

	activity, err := a.getOwnedActivity(ctx, userId, activityId)
	if err != nil {
		return err
	}

	if err := a.activityRepo.Delete(ctx, activity.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
