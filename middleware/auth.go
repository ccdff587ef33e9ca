package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cyfairmaids/utils"
)

// Context keys set for downstream handlers. The raw token is kept so the
// submission path can forward the credential explicitly to the gateway instead
// of relying on any shared default header.
const (
	ContextCustomerID = "customerID"
	ContextAuthToken  = "authToken"
)

// OptionalAuth resolves a bearer token into the customer id when one is
// present and valid. The wizard serves guests too, so an absent or invalid
// token is not an error; the request simply proceeds unauthenticated.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.Next()
			return
		}

		customerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			zap.L().Debug("ignoring invalid bearer token", zap.Error(err))
			c.Next()
			return
		}

		c.Set(ContextCustomerID, customerID)
		c.Set(ContextAuthToken, tokenString)
		c.Next()
	}
}

// CustomerID returns the authenticated customer id, empty for guests.
func CustomerID(c *gin.Context) string {
	if v, ok := c.Get(ContextCustomerID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// AuthToken returns the request's bearer token, empty for guests.
func AuthToken(c *gin.Context) string {
	if v, ok := c.Get(ContextAuthToken); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
