package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned by UserStore.Create when the email
	// unique constraint fires.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login for both an unknown
	// email and a wrong password, so the two are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
