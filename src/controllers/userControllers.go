package controllers

import (
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (uc *UserController) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.service.RegisterUser(req.Username, req.Password, req.Role)
	if err != nil {
		respondError(c, err, 404)
		return
	}

	c.JSON(201, models.RegisterResponse{
		ID:       user.Id,
		Username: user.Username,
		Role:     user.Role,
	})
}

func (uc *UserController) AuthenticateUser(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	token, err := uc.service.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid username or password"})
		return
	}
	c.JSON(200, gin.H{"token": token})
}
