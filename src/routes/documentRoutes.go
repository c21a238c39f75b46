package routes

import (
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/controllers"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/middleware"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupDocumentRoutes(router *gin.Engine, service *services.DocumentService) {
	controller := controllers.NewDocumentController(service)

	// Public reads
	router.GET("/documents", controller.GetAllDocuments)
	router.GET("/documents/:id", controller.GetDocumentById)
	router.GET("/documents/:id/position", controller.GetDocumentPosition)
	router.GET("/stakeholders", controller.ShowStakeholders)
	router.GET("/scales", controller.ShowScales)
	router.GET("/types", controller.ShowTypes)

	// Protected routes
	documentGroup := router.Group("/documents")
	documentGroup.Use(middleware.AuthMiddleware())
	{
		documentGroup.POST("", controller.AddDocument)
		documentGroup.PUT("/:id", controller.UpdateDocument)
		documentGroup.DELETE("/:id", controller.DeleteDocument)
		documentGroup.PUT("/:id/position", controller.AdjustDocumentPosition)
		documentGroup.PUT("/:id/description", controller.AddDocumentDescription)
	}

	// Kept out of /documents: a static "import" segment cannot share the
	// POST tree with the ":id" parameter routes.
	importGroup := router.Group("/import")
	importGroup.Use(middleware.AuthMiddleware())
	{
		importGroup.POST("/documents", controller.ImportDocuments)
	}

	stakeholderGroup := router.Group("/stakeholders")
	stakeholderGroup.Use(middleware.AuthMiddleware())
	{
		stakeholderGroup.POST("", controller.CheckAndAddStakeholder)
	}
}
