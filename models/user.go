package models

import (
	"fmt"
	"strings"
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRestaurant Role = "RESTAURANT"
	RoleAdmin      Role = "ADMIN"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'CUSTOMER'"`
	Address      string    `json:"address,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty" gorm:"column:postal_code"`
	City         string    `json:"city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCustomer builds a customer account. The role is fixed here, never taken
// from request input.
func NewCustomer(email, name, passwordHash string) (*User, error) {
	return newUser(email, name, passwordHash, RoleCustomer)
}

// NewRestaurant builds a restaurant account. Address fields are required for
// this role only.
func NewRestaurant(email, name, passwordHash, address, postalCode, city string) (*User, error) {
	u, err := newUser(email, name, passwordHash, RoleRestaurant)
	if err != nil {
		return nil, err
	}
	if address == "" || postalCode == "" || city == "" {
		return nil, fmt.Errorf("%w: restaurant requires address, postalCode and city", ErrValidation)
	}
	u.Address = address
	u.PostalCode = postalCode
	u.City = city
	return u, nil
}

// NewAdmin builds an administrator account.
func NewAdmin(email, name, passwordHash string) (*User, error) {
	return newUser(email, name, passwordHash, RoleAdmin)
}

func newUser(email, name, passwordHash string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", ErrValidation)
	}
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
