package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type StopController struct {
	stopService services.StopServiceInterface
}

func NewStopController(stopService services.StopServiceInterface) *StopController {
	return &StopController{
		stopService: stopService,
	}
}

func (s *StopController) ListStops(c *gin.Context) {

	stops, err := s.stopService.ListStops(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stops, "Stops fetched successfully")
}

func (s *StopController) CreateStop(c *gin.Context) {

	var req request_models.CreateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "City, start date and end date are required")
		return
	}

	stop, err := s.stopService.CreateStop(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop created successfully")
}

func (s *StopController) UpdateStop(c *gin.Context) {

	var req request_models.UpdateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid stop payload")
		return
	}

	stop, err := s.stopService.UpdateStop(c.Request.Context(), c.GetString("user_id"), c.Param("stopId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop updated successfully")
}

func (s *StopController) DeleteStop(c *gin.Context) {

	err := s.stopService.DeleteStop(c.Request.Context(), c.GetString("user_id"), c.Param("stopId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true}, "Stop deleted successfully")
}
