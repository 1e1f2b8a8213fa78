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

// Orders serves order creation and the restaurant-facing order lifecycle.
type Orders struct {
	Orders  *store.Orders
	Recipes *store.Recipes
	Log     *zap.Logger
}

type PlaceOrderRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Items        []uint `json:"items" binding:"required,min=1"`
}

// List returns the calling restaurant's PROCESSED orders. Delivered and
// cancelled orders are not part of this listing.
func (h *Orders) List(c *gin.Context) {
	restaurant := middleware.CurrentUser(c)
	orders, err := h.Orders.ListProcessedForRestaurant(restaurant.ID)
	if err != nil {
		h.Log.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create places an order for the calling customer, snapshotting each
// recipe's name, image and price at call time.
func (h *Orders) Create(c *gin.Context) {
	customer := middleware.CurrentUser(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items []models.OrderItem
	for _, recipeID := range req.Items {
		recipe, err := h.Recipes.FindByID(recipeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe not found"})
			return
		}
		items = append(items, models.OrderItem{
			Name:  recipe.Name,
			Image: recipe.Image,
			Price: recipe.Price,
		})
	}

	order, err := models.NewOrder(customer, req.RestaurantID, items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Orders.Create(order); err != nil {
		h.Log.Error("failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Cancel sets an order to CANCELLED and returns it
func (h *Orders) Cancel(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No order found"})
		return
	}

	order, err := h.Orders.Cancel(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No order found"})
			return
		}
		h.Log.Error("failed to cancel order", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to cancel order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
