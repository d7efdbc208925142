package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user with the same email exists.
	ErrDuplicateEmail = errors.New("duplicate email")
	// ErrInvalidID is returned when an identifier is not valid for the backend.
	ErrInvalidID = errors.New("invalid id")
)
