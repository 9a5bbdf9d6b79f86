package controllers

import (
	"github.com/gin-gonic/gin"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

func (ct *CityController) ListCities(c *gin.Context) {

	cities, err := ct.cityService.ListCities(c.Request.Context(), c.Query("q"), c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

func (ct *CityController) ListAttractions(c *gin.Context) {

	attractions, err := ct.cityService.ListAttractions(c.Request.Context(), c.Param("cityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}
