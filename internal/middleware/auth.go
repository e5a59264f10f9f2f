package middleware

import (
	"net/http"
	"strings"

	"settermind/internal/auth"
	"settermind/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContextUserKey is where RequireUser stores the authenticated user.
const ContextUserKey = "current_user"

// RequireUser validates the bearer token and loads the acting user. Handlers
// behind it can assume CurrentUser returns a persisted user.
func RequireUser(db *gorm.DB, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No se pudieron validar las credenciales"})
			return
		}

		userID, err := auth.GetUserIDFromToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No se pudieron validar las credenciales"})
			return
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No se pudieron validar las credenciales"})
			return
		}

		c.Set(ContextUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireUser, or nil outside it.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
