package middleware

import (
	"net/http"

	"sellerpulse/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates a route group to admin accounts. It must run
// after JWTAuthMiddleware, which places the verified role in the context.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
