package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jpep-http-service/config"
	"jpep-http-service/internal/error/response"
	"jpep-http-service/services"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the JWT service used by Authenticate
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken strips the "Bearer " prefix from an Authorization header
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authenticate requires a valid token and stores the caller identity in
// the request context under user_id, user_email and user_role
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's user ID, or 0
func CurrentUserID(c *gin.Context) uint {
	if id, ok := c.Get("user_id"); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
