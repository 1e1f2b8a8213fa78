package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	user, err := NewCustomer("A@X.com", "Alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email) // case-normalized
	assert.Equal(t, RoleCustomer, user.Role)
}

func TestNewCustomerRejectsBadFields(t *testing.T) {
	_, err := NewCustomer("not-an-email", "Alice", "hash")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCustomer("a@x.com", "", "hash")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewCustomer("a@x.com", "Alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewRestaurantRequiresAddressFields(t *testing.T) {
	user, err := NewRestaurant("r@x.com", "Chez Test", "hash", "1 rue de la Paix", "75001", "Paris")
	require.NoError(t, err)
	assert.Equal(t, RoleRestaurant, user.Role)
	assert.Equal(t, "75001", user.PostalCode)

	_, err = NewRestaurant("r@x.com", "Chez Test", "hash", "", "75001", "Paris")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewRestaurant("r@x.com", "Chez Test", "hash", "1 rue de la Paix", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}
