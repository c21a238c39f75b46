package routes

import (
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/controllers"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/middleware"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLinkRoutes(router *gin.Engine, service *services.LinkService) {
	controller := controllers.NewLinkController(service)

	// Public reads
	router.GET("/documents/:id/links", controller.GetDocumentLinks)

	// Protected routes
	linkGroup := router.Group("/links")
	linkGroup.Use(middleware.AuthMiddleware())
	{
		linkGroup.POST("", controller.LinkDocuments)
		linkGroup.PUT("", controller.UpdateLink)
		linkGroup.DELETE("", controller.DeleteLink)
	}
}
