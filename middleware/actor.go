package middleware

import (
	"net/http"

	"clinibook/models"

	"github.com/gin-gonic/gin"
)

const (
	// ActorIDKey and ActorRoleKey are the gin context keys set by ActorMiddleware.
	ActorIDKey   = "actorID"
	ActorRoleKey = "actorRole"
)

// ActorMiddleware reads the caller identity forwarded by the authenticating
// gateway. Authentication itself happens upstream; this service only trusts
// the X-Actor-Id / X-Actor-Role headers it is handed.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Actor-Id")
		role := models.Role(c.GetHeader("X-Actor-Role"))

		switch role {
		case models.RoleAdmin, models.RoleDoctor, models.RolePatient:
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or missing 'X-Actor-Role' header. Expected 'Admin', 'Doctor' or 'Patient'.",
			})
			return
		}
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing 'X-Actor-Id' header.",
			})
			return
		}

		c.Set(ActorIDKey, id)
		c.Set(ActorRoleKey, role)
		c.Next()
	}
}
