package db

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database configured through the environment. The
// default engine is SQLite (DB_DSN is the file path, "kiruna.db" when
// unset); setting DB_DRIVER=postgres switches to a Postgres DSN instead.
func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	dsn := os.Getenv("DB_DSN")

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		if dsn == "" {
			dsn = "kiruna.db"
		}
		dialector = sqlite.Open(dsn)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Println("Error connecting to the database:", err)
		return nil, err
	}

	log.Println("KirunaExplorer DB connected successfully!")

	return database, nil
}
