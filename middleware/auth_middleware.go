package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shottrack/services"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards a route group with bearer-token authentication. On
// success the resolved user is attached to the request context under "user"
// and "username".
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(c)
			return
		}

		user, err := auth.CurrentUser(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("user", user)
		c.Set("username", user.Username)
		c.Next()
	}
}

// unauthorized aborts the request with the collapsed credential failure
// response: every auth failure looks the same to the caller.
func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"detail": "Could not validate credentials",
	})
}
