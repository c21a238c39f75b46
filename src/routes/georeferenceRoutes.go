package routes

import (
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/controllers"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/middleware"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupGeoreferenceRoutes(router *gin.Engine, service *services.GeoreferenceService) {
	controller := controllers.NewGeoreferenceController(service)

	// Public reads for map rendering
	router.GET("/areas", controller.GetAreaNames)
	router.GET("/locations", controller.GetDocumentLocations)
	router.GET("/locations/:id", controller.GetDocumentLocation)

	// Protected routes
	areaGroup := router.Group("/areas")
	areaGroup.Use(middleware.AuthMiddleware())
	{
		areaGroup.POST("", controller.AddArea)
	}

	documentGroup := router.Group("/documents")
	documentGroup.Use(middleware.AuthMiddleware())
	{
		documentGroup.PUT("/:id/georeference", controller.UpdateDocumentGeoreference)
	}
}
