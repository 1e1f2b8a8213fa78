package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	customer := &User{ID: 1, Email: "a@x.com", Role: RoleCustomer}
	items := []OrderItem{
		{Name: "Blanquette", Image: "https://img.example/blanquette.jpg", Price: 12.99},
		{Name: "Tarte", Image: "https://img.example/tarte.jpg", Price: 6.50},
	}

	order, err := NewOrder(customer, 2, items)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessed, order.Status)
	assert.Equal(t, uint(1), order.CustomerID)
	assert.Equal(t, "a@x.com", order.CustomerEmail)
	assert.Equal(t, uint(2), order.RestaurantID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Blanquette", order.Items[0].Name)
	assert.Equal(t, 12.99, order.Items[0].Price)
}

func TestNewOrderRejectsEmptyItems(t *testing.T) {
	customer := &User{ID: 1, Email: "a@x.com"}

	_, err := NewOrder(customer, 2, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrder(customer, 2, []OrderItem{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewOrderRejectsInvalidItems(t *testing.T) {
	customer := &User{ID: 1, Email: "a@x.com"}

	_, err := NewOrder(customer, 2, []OrderItem{{Name: "", Image: "x", Price: 1}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrder(customer, 2, []OrderItem{{Name: "x", Image: "x", Price: 0}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewOrder(nil, 2, []OrderItem{{Name: "x", Image: "x", Price: 1}})
	assert.ErrorIs(t, err, ErrValidation)
}
