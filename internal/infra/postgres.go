package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"

	"wayfarer/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// MigrateSchemas keeps the table set in sync with the entity models.
func MigrateSchemas(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.City{},
		&db_models.Attraction{},
		&db_models.Trip{},
		&db_models.Stop{},
		&db_models.Activity{},
		&db_models.Expense{},
		&db_models.SharedTrip{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
