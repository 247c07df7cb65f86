package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantGuard ensures every request past this point carries a usable tenant
// scope. AuthMiddleware sets the tenant ID from the token claims; a missing
// or zero value means the token was minted without a tenant and must not
// reach tenant-scoped repositories.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextKeyTenantID)
		tenantID, ok := val.(uuid.UUID)
		if !exists || !ok || tenantID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "tenant scope required"},
			})
			return
		}
		c.Next()
	}
}
