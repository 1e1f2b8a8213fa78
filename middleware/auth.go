package middleware

import (
	"net/http"
	"strings"

	"food-ordering-api/auth"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

const userKey = "authUser"

// AuthRequired authenticates the bearer token and binds the acting user to
// the request context.
func AuthRequired(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		user, err := guard.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles. It must
// be registered after AuthRequired so a bad token fails authentication first.
func RoleRequired(guard *auth.Guard, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if err := guard.Authorize(user, roles...); err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Required role(s): " + rolesString(roles),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// CurrentUser extracts the acting user bound by AuthRequired
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}
