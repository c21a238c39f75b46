package main

// Standalone bootstrap: creates the initial urban-planner account against
// the configured database. Run once before first deploy.

import (
	"log"
	"os"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DB_DSN")

	var dialector gorm.Dialector
	if os.Getenv("DB_DRIVER") == "postgres" {
		dialector = postgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "kiruna.db"
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	username := os.Getenv("INIT_USERNAME")
	if username == "" {
		username = "urbanplanner"
	}
	password := os.Getenv("INIT_PASSWORD")
	if password == "" {
		password = username
	}

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists", username)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
		Role:     "Urban Planner",
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("User %q created", username)
}
