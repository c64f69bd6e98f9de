// Package password provides the bcrypt-backed password hasher.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/webauth-server/internal/model"
)

var _ model.PasswordHasher = (*BcryptHasher)(nil)

// ErrMismatch is returned by Verify when the password does not match
// the hash, or the hash cannot be parsed. The two cases are deliberately
// indistinguishable.
var ErrMismatch = errors.New("password does not match")

// BcryptHasher implements model.PasswordHasher using bcrypt. Each Hash
// call salts independently, so equal inputs produce distinct hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost factor. Costs
// outside the bcrypt range fall back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash computes a salted bcrypt digest of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		// Deliberately drops the input from the error chain.
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify recomputes the digest using the salt and cost embedded in hash
// and compares in constant time. Any failure, including a malformed
// hash, is reported as ErrMismatch.
func (h *BcryptHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
