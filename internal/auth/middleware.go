package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

// Gin context keys set by the middleware.
const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// Middleware authenticates the Bearer token and stores the caller's id
// and role on the context.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(401, gin.H{"message": "Missing token"})
			return
		}
		claims, err := m.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"message": "Invalid token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates admin routes; must run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != domain.RoleAdmin {
			c.AbortWithStatusJSON(403, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(ContextUserID))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func CurrentRole(c *gin.Context) domain.Role {
	return domain.Role(c.GetString(ContextRole))
}
