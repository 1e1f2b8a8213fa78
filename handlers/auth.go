package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/auth"
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth handles login and self-registration.
type Auth struct {
	Users  *store.Users
	Tokens *auth.TokenIssuer
	Log    *zap.Logger
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and returns an access token. Unknown email and
// wrong password produce the same response.
func (h *Auth) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Log.Error("failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// Register creates a customer account and logs it in. The role is always
// CUSTOMER regardless of the payload.
func (h *Auth) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.NewCustomer(req.Email, req.Name, hash)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		h.Log.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Log.Error("failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
