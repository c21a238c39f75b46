package routes

import (
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/controllers"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/middleware"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupResourceRoutes(router *gin.Engine, service *services.ResourceService, documents *services.DocumentService) {
	controller := controllers.NewResourceController(service, documents)

	// Public reads
	router.GET("/documents/:id/resources", controller.GetDocumentResources)
	router.GET("/resources/:id/file", controller.ServeResource)

	// Protected routes
	documentGroup := router.Group("/documents")
	documentGroup.Use(middleware.AuthMiddleware())
	{
		documentGroup.POST("/:id/resources", controller.UploadResource)
		documentGroup.POST("/:id/resources/drive", controller.ImportResourceFromDrive)
	}

	resourceGroup := router.Group("/resources")
	resourceGroup.Use(middleware.AuthMiddleware())
	{
		resourceGroup.DELETE("/:id", controller.DeleteResource)
	}
}
