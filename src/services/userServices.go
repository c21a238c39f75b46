package services

import (
	"errors"
	"strings"
	"time"

	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/apperrors"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/middleware"
	"github.com/KirunaExplorer/KirunaExplorer-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// RegisterUser creates a new user with a hashed password
func (s *UserService) RegisterUser(username, password, role string) (*models.UserModel, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidation("Username and password are required")
	}

	var existing models.UserModel
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewConflict("Username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorage(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperrors.NewStorage(err)
	}

	return &user, nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(username, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.New("invalid username or password")
		}
		return "", apperrors.NewStorage(result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid username or password")
	}

	claims := jwt.MapClaims{
		"id":   user.Id,
		"role": user.Role,
		"exp":  time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
