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

// Restaurants serves administrative restaurant-account management.
type Restaurants struct {
	Users *store.Users
	Log   *zap.Logger
}

type CreateRestaurantRequest struct {
	Data struct {
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required"`
		Name       string `json:"name" binding:"required"`
		Address    string `json:"address" binding:"required"`
		PostalCode string `json:"postalCode" binding:"required"`
		City       string `json:"city" binding:"required"`
	} `json:"data" binding:"required"`
}

type UpdateRestaurantRequest struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// List returns all restaurant accounts — admin only
func (h *Restaurants) List(c *gin.Context) {
	restaurants, err := h.Users.ListByRole(models.RoleRestaurant)
	if err != nil {
		h.Log.Error("failed to list restaurants", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}
	if len(restaurants) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurants found"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Create creates a restaurant account — admin only. The role is always
// RESTAURANT regardless of the payload.
func (h *Restaurants) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Data.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.NewRestaurant(req.Data.Email, req.Data.Name, hash,
		req.Data.Address, req.Data.PostalCode, req.Data.City)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		h.Log.Error("failed to create restaurant", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// restaurantPatchColumns maps mutable payload keys to database columns
var restaurantPatchColumns = map[string]string{
	"name":       "name",
	"address":    "address",
	"postalCode": "postal_code",
	"city":       "city",
}

// Update applies a partial update to a restaurant account
func (h *Restaurants) Update(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found"})
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := map[string]interface{}{}
	for key, value := range req.Data {
		if column, ok := restaurantPatchColumns[key]; ok {
			patch[column] = value
		}
	}

	user, err := h.Users.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found"})
			return
		}
		h.Log.Error("failed to update restaurant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a restaurant account and all recipes it owns — admin only
func (h *Restaurants) Delete(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found"})
		return
	}

	if err := h.Users.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found"})
			return
		}
		h.Log.Error("failed to delete restaurant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.Status(http.StatusNoContent)
}
