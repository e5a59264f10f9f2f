package controllers

import (
	"errors"
	"log"
	"net/http"

	"settermind/internal/auth"
	"settermind/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB        *gorm.DB
	JWTSecret []byte
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user. A duplicate email is a conflict; the first
// user's record is never touched.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de registro inválidos."})
		return
	}

	ctx := c.Request.Context()

	count, err := gorm.G[models.User](ac.DB).Where("email = ?", req.Email).Count(ctx, "id")
	if err != nil {
		log.Printf("failed to check existing email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado."})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
	}
	if err := ac.DB.WithContext(ctx).Create(&user).Error; err != nil {
		// Unique indexes still back the pre-check against races.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado."})
			return
		}
		log.Printf("failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usuario registrado exitosamente."})
}

// Login verifies credentials and issues a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de acceso inválidos."})
		return
	}

	var user models.User
	err := ac.DB.WithContext(c.Request.Context()).Where("email = ?", req.Email).First(&user).Error
	if err != nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas."})
		return
	}

	token, err := auth.GenerateToken(user.ID, ac.JWTSecret)
	if err != nil {
		log.Printf("failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
