package db_models

type City struct {
	BaseModel
	Name       string
	Country    string
	Region     string
	CostIndex  int
	Popularity int
	ImageURL   string

	Attractions []Attraction
}
