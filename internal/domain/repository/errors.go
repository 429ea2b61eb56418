package repository

import "errors"

var (
	// ErrNotFound covers both a truly absent row and a row owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail maps the users.email unique constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
