package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitPostgresql opens a connection pool for the optional reference
// dataset. Callers treat a nil result as "no database configured" and fall
// back to file or seed data.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
