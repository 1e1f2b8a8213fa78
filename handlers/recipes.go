package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recipes serves menu-item management for restaurant accounts.
type Recipes struct {
	Recipes *store.Recipes
	Log     *zap.Logger
}

type CreateRecipeRequest struct {
	Data struct {
		Name  string  `json:"name" binding:"required"`
		Image string  `json:"image" binding:"required"`
		Price float64 `json:"price" binding:"required,gt=0"`
	} `json:"data" binding:"required"`
}

type UpdateRecipeRequest struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// List returns the recipes owned by the calling restaurant
func (h *Recipes) List(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	recipes, err := h.Recipes.ListByOwner(owner.ID)
	if err != nil {
		h.Log.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	if len(recipes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipes found"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Get returns a single recipe
func (h *Recipes) Get(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipe found"})
		return
	}
	recipe, err := h.Recipes.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recipe found"})
			return
		}
		h.Log.Error("failed to fetch recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// Create adds a recipe owned by the calling restaurant
func (h *Recipes) Create(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := models.NewRecipe(owner.ID, req.Data.Name, req.Data.Image, req.Data.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Recipes.Create(recipe); err != nil {
		h.Log.Error("failed to create recipe", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// recipePatchColumns maps mutable payload keys to database columns
var recipePatchColumns = map[string]string{
	"name":  "name",
	"image": "image",
	"price": "price",
}

// Update applies a partial update to a recipe
func (h *Recipes) Update(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipe found"})
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := map[string]interface{}{}
	for key, value := range req.Data {
		if column, ok := recipePatchColumns[key]; ok {
			patch[column] = value
		}
	}

	recipe, err := h.Recipes.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recipe found"})
			return
		}
		h.Log.Error("failed to update recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}
