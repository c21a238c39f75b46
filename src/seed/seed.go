package seed

import (
	"log"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultStakeholders = []string{
	"Kiruna kommun",
	"LKAB",
	"Kiruna kommun/Residents",
	"Kiruna kommun/White Arkitekter",
	"Norrbotten Museum",
	"Architecture firms",
}

var defaultScales = []string{
	"Text",
	"Concept",
	"Blueprints/effects",
	"1:1,000",
	"1:7,500",
	"1:8,000",
	"1:12,000",
}

var defaultTypes = []string{
	"Informative document",
	"Prescriptive document",
	"Design document",
	"Technical document",
	"Material effect",
	"Agreement",
	"Conflict",
	"Consultation",
}

func Seed(db *gorm.DB) {
	// Admin user
	var user models.UserModel
	result := db.Where("username = ?", "urbanplanner").First(&user)
	if result.Error == nil {
		log.Println("User 'urbanplanner' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("urbanplanner"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: "urbanplanner",
			Password: string(hashedPassword),
			Role:     "Urban Planner",
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'urbanplanner' created")
		}
	}

	// Stakeholder lookup
	for _, name := range defaultStakeholders {
		var existing models.StakeholderModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&models.StakeholderModel{Name: name}).Error; err != nil {
			log.Printf("Failed to create stakeholder %q: %v\n", name, err)
		}
	}

	// Scale lookup
	for _, name := range defaultScales {
		var existing models.ScaleModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&models.ScaleModel{Name: name}).Error; err != nil {
			log.Printf("Failed to create scale %q: %v\n", name, err)
		}
	}

	// Type lookup
	for _, name := range defaultTypes {
		var existing models.TypeModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&models.TypeModel{Name: name}).Error; err != nil {
			log.Printf("Failed to create document type %q: %v\n", name, err)
		}
	}

	log.Println("Seed data checked")
}
