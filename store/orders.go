package store

import (
	"errors"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// Orders persists orders and their snapshot line items.
type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

func (s *Orders) Create(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *Orders) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListProcessedForRestaurant returns only currently actionable orders.
// Delivered and cancelled orders are not surfaced through this listing.
func (s *Orders) ListProcessedForRestaurant(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusProcessed).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Cancel sets the order status to CANCELLED and returns the updated order.
func (s *Orders) Cancel(id uint) (*models.Order, error) {
	order, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(order).Update("status", models.StatusCancelled).Error; err != nil {
		return nil, err
	}
	order.Status = models.StatusCancelled
	return order, nil
}
