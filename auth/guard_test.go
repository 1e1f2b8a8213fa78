package auth

import (
	"errors"
	"testing"
	"time"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	users map[uint]*models.User
}

func (f *fakeDirectory) FindByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func newTestGuard(users map[uint]*models.User) (*Guard, *TokenIssuer) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Minute)
	return NewGuard(issuer, &fakeDirectory{users: users}), issuer
}

func TestGuardAuthenticate(t *testing.T) {
	customer := &models.User{ID: 1, Email: "a@x.com", Role: models.RoleCustomer}
	guard, issuer := newTestGuard(map[uint]*models.User{1: customer})

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	user, err := guard.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestGuardAuthenticateFailures(t *testing.T) {
	guard, issuer := newTestGuard(map[uint]*models.User{})

	_, err := guard.Authenticate("")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = guard.Authenticate("garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Token is valid but the user was deleted after issuance
	token, err := issuer.Issue(99)
	require.NoError(t, err)
	_, err = guard.Authenticate(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGuardAuthorize(t *testing.T) {
	customer := &models.User{ID: 1, Role: models.RoleCustomer}
	admin := &models.User{ID: 2, Role: models.RoleAdmin}
	guard, _ := newTestGuard(nil)

	assert.NoError(t, guard.Authorize(admin, models.RoleAdmin))
	assert.NoError(t, guard.Authorize(customer, models.RoleCustomer, models.RoleAdmin))

	// A customer on a restaurant-only operation is forbidden, not unauthenticated
	err := guard.Authorize(customer, models.RoleRestaurant)
	assert.ErrorIs(t, err, ErrForbidden)
}
