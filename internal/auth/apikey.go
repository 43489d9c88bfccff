package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ownerCtxKey is the Gin context key used to store the authenticated request owner.
const ownerCtxKey = "request_owner"

// APIKeyMiddleware maps X-API-Key to the owner submitting checks.
func APIKeyMiddleware(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := strings.TrimSpace(c.GetHeader("X-API-Key"))
		owner, ok := keys[apiKey]
		if apiKey == "" || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(ownerCtxKey, owner)
		c.Next()
	}
}

// Owner returns the authenticated owner from the request context.
func Owner(c *gin.Context) string {
	v, _ := c.Get(ownerCtxKey)
	s, _ := v.(string)
	return s
}
