package auth

import (
	"net/http"
	"strings"

	"gamebeats/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middlewares in this package.
const (
	SubjectKey = "subject"
	RoleKey    = "role"
	RaterIDKey = "raterID"
)

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// AdminMiddleware checks for the admin role.
// It must be used AFTER AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if role != jwt.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware identifies the rater: the token subject when a valid
// token is sent, the client IP otherwise. It never rejects a request.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raterID := c.ClientIP()
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwt.ParseToken(tokenString); err == nil && claims.Subject != "" {
				c.Set(SubjectKey, claims.Subject)
				c.Set(RoleKey, claims.Role)
				raterID = claims.Subject
			}
		}
		c.Set(RaterIDKey, raterID)
		c.Next()
	}
}

// RaterID returns the identity set by OptionalAuthMiddleware, falling back to
// the client IP.
func RaterID(c *gin.Context) string {
	if v, ok := c.Get(RaterIDKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}
