package config

import (
	"fmt"
	"log"
	"os"

	"github.com/itsUtkarshOjha/fitlogger/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env if present. Missing file is fine in production where
// the environment is injected directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Trigram similarity backs the fuzzy workout search.
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS pg_trgm").Error; err != nil {
		log.Fatalf("Failed to enable pg_trgm: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Weight{},
		&models.Exercise{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
