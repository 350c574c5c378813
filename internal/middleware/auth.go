package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contactbook/internal/models"
	"github.com/thereayou/contactbook/internal/services"
	"github.com/thereayou/contactbook/pkg/auth"
)

const UserKey = "currentUser"

// RequireAuth проверяет bearer access-токен и кладёт пользователя в контекст
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		user, err := authService.Authenticate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(UserKey).(*models.User)
}
