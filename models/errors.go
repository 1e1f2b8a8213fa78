package models

import "errors"

// ErrValidation marks invalid field combinations rejected at construction time.
var ErrValidation = errors.New("validation failed")
