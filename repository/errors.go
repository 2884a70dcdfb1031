package repository

import "errors"

var (
	// ErrDuplicateUsername signals the username is already registered.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrDuplicateEmail signals the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
