package store

import (
	"errors"
	"strings"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// Users is the user directory backed by the database.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) ListByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create persists a user built by one of the models constructors. The email
// uniqueness check runs here on top of the unique index.
func (s *Users) Create(user *models.User) error {
	if _, err := s.FindByEmail(user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.db.Create(user).Error
}

// Update applies a partial update of mutable fields and returns the fresh
// record. The patch keys are database columns; handlers filter them.
func (s *Users) Update(id uint, patch map[string]interface{}) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		if err := s.db.Model(user).Updates(patch).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByID(id)
}

// Delete removes a user and all recipes it owns. The recipe delete runs
// first and is a no-op when nothing matches, so a retried delete completes
// cleanly even though the two steps are not one transaction.
func (s *Users) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.db.Where("user_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.User{}, id).Error
}
