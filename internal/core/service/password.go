package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

// MinPasswordLength is the registration floor.
const MinPasswordLength = 6

// dummyHash is a valid bcrypt hash of a throwaway value. Login verifies
// against it when the email is unknown so that a missing account costs the
// same as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword produces a salted bcrypt hash. Each call embeds a fresh salt,
// so two hashes of the same plaintext differ.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: empty password", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
