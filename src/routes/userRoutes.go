package routes

import (
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/controllers"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	router.POST("/register", controller.RegisterUser)
	router.POST("/login", controller.AuthenticateUser)
}
