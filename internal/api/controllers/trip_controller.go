package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type TripController struct {
	tripService     services.TripServiceInterface
	timelineService services.TimelineServiceInterface
}

func NewTripController(
	tripService services.TripServiceInterface,
	timelineService services.TimelineServiceInterface) *TripController {

	return &TripController{
		tripService:     tripService,
		timelineService: timelineService,
	}
}

// ListTrips godoc
// @Summary List trips of the authenticated user
// @Tags Trip
// @Produce json
// @Success 200 {array} response_models.TripListItem
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {

	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) CreateTrip(c *gin.Context) {

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, start date and end date are required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

func (t *TripController) GetTrip(c *gin.Context) {

	trip, err := t.tripService.GetTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func (t *TripController) UpdateTrip(c *gin.Context) {

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {

	err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true}, "Trip deleted successfully")
}

// GetTimeline godoc
// @Summary Group a trip's scheduled activities by calendar day
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} map[string][]response_models.ActivityResponse
// @Security BearerAuth
// @Router /trips/{tripId}/timeline [get]
func (t *TripController) GetTimeline(c *gin.Context) {

	timeline, err := t.timelineService.GetTimeline(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, timeline, "Timeline fetched successfully")
}
