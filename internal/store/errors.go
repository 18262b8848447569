package store

import "errors"

var (
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user exists")

	// ErrTreeNotFound is returned when adding to a tree that doesn't exist.
	ErrTreeNotFound = errors.New("tree not found")
)
