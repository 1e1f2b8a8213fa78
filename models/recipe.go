package models

import (
	"fmt"
	"time"
)

// Recipe is a menu item owned by a restaurant account.
type Recipe struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Image     string    `json:"image" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecipe builds a recipe for the owning restaurant.
func NewRecipe(ownerID uint, name, image string, price float64) (*Recipe, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("%w: recipe requires an owner", ErrValidation)
	}
	if name == "" || image == "" {
		return nil, fmt.Errorf("%w: recipe requires name and image", ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: recipe price must be positive", ErrValidation)
	}
	return &Recipe{UserID: ownerID, Name: name, Image: image, Price: price}, nil
}
