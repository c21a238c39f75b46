package main

import (
	"log"
	"os"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/db"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/middleware"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/routes"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/seed"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.DocumentModel{},
		&models.DocumentPositionModel{},
		&models.DocumentLinkModel{},
		&models.StakeholderModel{},
		&models.ScaleModel{},
		&models.TypeModel{},
		&models.AreaModel{},
		&models.OriginalResourceModel{},
		&models.UserModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	middleware.SetSecretKey(secret)

	// Lookup data
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	documentService := services.NewDocumentService(db)
	linkService := services.NewLinkService(db, documentService)
	georeferenceService := services.NewGeoreferenceService(db, documentService)
	resourceService := services.NewResourceService(db)
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupDocumentRoutes(router, documentService)
	routes.SetupLinkRoutes(router, linkService)
	routes.SetupGeoreferenceRoutes(router, georeferenceService)
	routes.SetupResourceRoutes(router, resourceService, documentService)
	routes.SetupUserRoutes(router, userService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "KirunaExplorer backend is running")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
