package db_models

import "github.com/google/uuid"

// SharedTrip grants public read access to a trip through an
// unguessable token. At most one exists per trip; the unique
// indexes reject the duplicate insert if two share requests race.
type SharedTrip struct {
	BaseModel
	TripID   uuid.UUID `gorm:"uniqueIndex"`
	ShareID  string    `gorm:"uniqueIndex"`
	IsPublic bool      `gorm:"default:true"`
}
