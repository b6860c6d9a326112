package middleware

import (
	"net/http"
	"strings"

	"servana/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

func requireRole(role, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		sub, tokenRole, err := utils.ExtractFromToken(token)
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set(contextKey, sub)
		c.Next()
	}
}

// JWTAuthUserMiddleware guards customer endpoints and stores the caller's ID
// under "userID".
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return requireRole("customer", "userID")
}

// JWTAuthServicerMiddleware guards servicer endpoints and stores the caller's
// ID under "servicerID".
func JWTAuthServicerMiddleware() gin.HandlerFunc {
	return requireRole("servicer", "servicerID")
}

// JWTAuthAdminMiddleware guards back-office endpoints.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return requireRole("admin", "adminID")
}
