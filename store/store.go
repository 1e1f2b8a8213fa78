package store

import "errors"

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when creating a user with a known email.
	ErrEmailTaken = errors.New("email already registered")
)
