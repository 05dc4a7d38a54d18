// Package auth provides password hashing and password-reset token handling.
package auth

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// HashPassword derives an argon2id hash from a plaintext password. The
// returned string embeds the salt and parameters, so it is self-verifying.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// VerifyPassword checks a plaintext password against an encoded argon2id
// hash. The comparison inside argon2id is constant-time. An empty hash
// (OAuth-only account) never matches.
func VerifyPassword(password, hash string) (bool, error) {
	if hash == "" {
		return false, nil
	}
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false, fmt.Errorf("failed to check password: %w", err)
	}
	return match, nil
}
