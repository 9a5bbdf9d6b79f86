package response_models

import dbm "wayfarer/internal/models/db_models"

type CityResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Region     string `json:"region,omitempty"`
	CostIndex  int    `json:"cost_index"`
	Popularity int    `json:"popularity"`
	ImageURL   string `json:"image_url,omitempty"`
}

type AttractionResponse struct {
	ID            string  `json:"id"`
	CityID        string  `json:"city_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	Description   string  `json:"description,omitempty"`
	EstimatedCost float64 `json:"estimated_cost"`
	Popularity    int     `json:"popularity"`
}

func BuildCityResponse(city *dbm.City) CityResponse {
	return CityResponse{
		ID:         city.ID.String(),
		Name:       city.Name,
		Country:    city.Country,
		Region:     city.Region,
		CostIndex:  city.CostIndex,
		Popularity: city.Popularity,
		ImageURL:   city.ImageURL,
	}
}

func BuildAttractionResponse(attraction *dbm.Attraction) AttractionResponse {
	return AttractionResponse{
		ID:            attraction.ID.String(),
		CityID:        attraction.CityID.String(),
		Name:          attraction.Name,
		Category:      attraction.Category,
		Description:   attraction.Description,
		EstimatedCost: attraction.EstimatedCost.InexactFloat64(),
		Popularity:    attraction.Popularity,
	}
}
