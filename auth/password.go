package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when a hash is requested for an empty password.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword generates a salted bcrypt hash for the given password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether the password matches the stored hash. A
// malformed hash counts as a mismatch, so callers cannot tell a missing
// account apart from a wrong password at this layer.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
