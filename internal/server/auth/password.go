package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches digest. A mismatch is (false, nil);
	// an error is returned only when the digest itself cannot be decoded.
	Check(digest, password string) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt. A fresh random salt is
// generated per call and embedded in the digest, so hashing the same password
// twice yields different digests. Comparison runs in constant time.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Check(digest, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// malformed digest
		return false, fmt.Errorf("decoding digest: %w", err)
	}
}
