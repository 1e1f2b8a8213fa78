package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Users serves the user directory endpoints.
type Users struct {
	Users *store.Users
	Log   *zap.Logger
}

// List returns every account — admin only
func (h *Users) List(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		h.Log.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No users found"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Me returns the authenticated caller
func (h *Users) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
