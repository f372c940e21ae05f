package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
)

// UserIDKey is the gin context key holding the acting user's id
const UserIDKey = "userID"

// Identity stores a fixed acting user id in the request context.
// It stands where an authentication middleware would.
func Identity(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDKey, userID) // Store userID in context
		c.Next()                 // Proceed to the next handler
	}
}
