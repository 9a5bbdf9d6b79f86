package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

func (a *ActivityController) ListActivities(c *gin.Context) {

	activities, err := a.activityService.ListActivities(c.Request.Context(), c.GetString("user_id"), c.Param("stopId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

func (a *ActivityController) CreateActivity(c *gin.Context) {

	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity name is required")
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), c.GetString("user_id"), c.Param("stopId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity created successfully")
}

func (a *ActivityController) UpdateActivity(c *gin.Context) {

	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity payload")
		return
	}

	activity, err := a.activityService.UpdateActivity(c.Request.Context(), c.GetString("user_id"), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

func (a *ActivityController) DeleteActivity(c *gin.Context) {

	err := a.activityService.DeleteActivity(c.Request.Context(), c.GetString("user_id"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true}, "Activity deleted successfully")
}
