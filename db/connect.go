package db

import (
	"fmt"
	"log"
	"notes-lab/entities"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and runs migrations. Postgres is used when
// DB_URL or the individual DB_* parameters are set; otherwise it falls
// back to a local SQLite file so the lab runs with zero setup.
func Connect() (Database, error) {
	dialector, err := resolveDialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully!")

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &GormDatabase{DB: db}, nil
}

// Migrate creates or updates the users and notes tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.User{}, &entities.Note{})
}

func resolveDialector() (gorm.Dialector, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL != "" {
		// Hosted Postgres URLs usually require SSL; add it when missing.
		if !strings.Contains(dbURL, "sslmode=") {
			if strings.Contains(dbURL, "?") {
				dbURL += "&sslmode=require"
			} else {
				dbURL += "?sslmode=require"
			}
		}
		log.Println("Connecting to Postgres using DB_URL...")
		return postgres.Open(dbURL), nil
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost != "" {
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		if dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}

		sslMode := "require"
		if dbHost == "localhost" || dbHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbHost, dbUser, dbPassword, dbName, dbPort, sslMode)
		log.Printf("Connecting to Postgres using individual parameters (sslmode=%s)...", sslMode)
		return postgres.Open(dsn), nil
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "notes-lab.db"
	}
	log.Printf("No Postgres configuration found, using SQLite at %s", path)
	return sqlite.Open(path), nil
}
