package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/petnextdoor/pet_next_door/internal/models"
)

const userContextKey = "currentUser"

// authMiddleware resolves the Bearer session token to a user and stores the
// user in the request context. Requests without a valid session are rejected.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			h.logger.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := h.services.Users.Authenticate(c.Request.Context(), token)
		if err != nil {
			h.logger.WithError(err).Warn("Failed to authenticate session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user stored by authMiddleware.
func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
