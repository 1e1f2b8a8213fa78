package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	StatusProcessed OrderStatus = "PROCESSED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CustomerID    uint        `json:"customer_id" gorm:"not null"`
	CustomerEmail string      `json:"customer_email" gorm:"not null"`
	RestaurantID  uint        `json:"restaurant_id" gorm:"not null"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'PROCESSED'"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a recipe at order time. Later edits to the
// recipe must not change it.
type OrderItem struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	OrderID uint    `json:"order_id" gorm:"not null"`
	Name    string  `json:"name" gorm:"not null"`
	Image   string  `json:"image" gorm:"not null"`
	Price   float64 `json:"price" gorm:"not null"`
}

// NewOrder builds an order for a customer, copying the customer's id and
// email and the supplied line items. Starts at PROCESSED.
func NewOrder(customer *User, restaurantID uint, items []OrderItem) (*Order, error) {
	if customer == nil || customer.ID == 0 {
		return nil, fmt.Errorf("%w: order requires a customer", ErrValidation)
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("%w: order requires a restaurant", ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order requires at least one item", ErrValidation)
	}
	copied := make([]OrderItem, len(items))
	for i, item := range items {
		if item.Name == "" || item.Image == "" || item.Price <= 0 {
			return nil, fmt.Errorf("%w: order item requires name, image and price", ErrValidation)
		}
		copied[i] = OrderItem{Name: item.Name, Image: item.Image, Price: item.Price}
	}
	return &Order{
		CustomerID:    customer.ID,
		CustomerEmail: customer.Email,
		RestaurantID:  restaurantID,
		Items:         copied,
		Status:        StatusProcessed,
	}, nil
}
