// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// UserIDHeader carries the caller's user reference on every request.
const UserIDHeader = "X-User-ID"

// userIDKey is the Gin context key holding the resolved user ID.
const userIDKey = "userID"

// UserIdentity returns a middleware that resolves the caller's user ID from
// the request header and stores it in the Gin context. Requests without a
// valid reference are rejected.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Missing user identity",
				Code:  string(domainerror.ErrCodeMissingUserIdentity),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid user identity",
				Code:  string(domainerror.ErrCodeInvalidUserIdentity),
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the resolved user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}
