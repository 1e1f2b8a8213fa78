package auth

import (
	"errors"

	"food-ordering-api/models"
)

var (
	// ErrUnauthenticated covers a missing, invalid or expired token, and a
	// token whose user no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the caller is authenticated but lacks the role.
	ErrForbidden = errors.New("forbidden")
)

// UserFinder is the directory lookup the guard needs.
type UserFinder interface {
	FindByID(id uint) (*models.User, error)
}

// Guard authenticates a bearer token and authorizes the resulting user
// against a set of allowed roles. Authenticate must run before Authorize so
// a bad token yields an authentication failure, never a role failure.
type Guard struct {
	tokens *TokenIssuer
	users  UserFinder
}

func NewGuard(tokens *TokenIssuer, users UserFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// Authenticate verifies the raw token and resolves the user it names. A user
// deleted after the token was issued is an authentication failure.
func (g *Guard) Authenticate(rawToken string) (*models.User, error) {
	if rawToken == "" {
		return nil, ErrUnauthenticated
	}
	id, err := g.tokens.Verify(rawToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := g.users.FindByID(id)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// Authorize rejects users whose role is not in the allowed set.
func (g *Guard) Authorize(user *models.User, allowed ...models.Role) error {
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return ErrForbidden
}
