package middleware

import (
	"net/http"
	"strings"

	"share-meal-api-server/internal/auth"

	"github.com/gin-gonic/gin"
)

// VerifyToken gates a route behind the identity provider. The handler only
// runs after the bearer token checks out.
func VerifyToken(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access. Token not Found"})
			return
		}

		// Token is the second field of "Bearer <token>". A header without
		// the second field fails verification rather than panicking.
		parts := strings.Fields(authorization)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access."})
			return
		}

		if _, err := verifier.Verify(parts[1]); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access."})
			return
		}

		c.Next()
	}
}
