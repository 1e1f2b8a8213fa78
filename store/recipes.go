package store

import (
	"errors"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// Recipes persists restaurant menu items.
type Recipes struct {
	db *gorm.DB
}

func NewRecipes(db *gorm.DB) *Recipes {
	return &Recipes{db: db}
}

func (s *Recipes) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *Recipes) ListByOwner(ownerID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Where("user_id = ?", ownerID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Recipes) Create(recipe *models.Recipe) error {
	return s.db.Create(recipe).Error
}

func (s *Recipes) Update(id uint, patch map[string]interface{}) (*models.Recipe, error) {
	recipe, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		if err := s.db.Model(recipe).Updates(patch).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByID(id)
}
