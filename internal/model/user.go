package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
//
// Create must rely on the store's unique index on email for duplicate
// detection and return ErrDuplicateEmail when it fires. Callers never
// pre-check for an existing email.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
// The ID is assigned by the store on creation.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PasswordHasher computes and verifies one-way salted password digests.
// Implementations must never expose plaintext or hash material in errors.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns nil when password matches hash. A malformed hash is
	// reported the same way as a mismatch.
	Verify(password, hash string) error
}
