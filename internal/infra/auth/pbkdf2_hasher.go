// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"medlink/internal/domain/service"
	"medlink/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

// Default derivation parameters. Hash and salt are stored as separate
// hex-encoded columns, so parameters must stay stable across releases or
// stored credentials stop verifying.
const (
	defaultIterations = 25000
	saltLength        = 32
	keyLength         = 64
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-SHA256 with a per-record random salt.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{iterations: defaultIterations}
}

// NewPBKDF2HasherWithIterations creates a hasher with a custom iteration
// count, mainly to keep tests fast.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash derives a fresh random salt and the matching PBKDF2 digest.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate password salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	return hex.EncodeToString(key), hex.EncodeToString(salt), nil
}

// Verify re-derives the digest for the candidate password with the stored
// salt and compares it in constant time.
func (h *pbkdf2Hasher) Verify(storedHash, storedSalt, candidate string) bool {
	salt, err := hex.DecodeString(storedSalt)
	if err != nil {
		return false
	}

	expected, err := hex.DecodeString(storedHash)
	if err != nil || len(expected) == 0 {
		return false
	}

	key := pbkdf2.Key([]byte(candidate), salt, h.iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(key, expected) == 1
}
