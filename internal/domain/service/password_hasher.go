// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// It works on stored hash/salt material only and is deliberately independent
// of the record types, so persistence schema stays decoupled from auth logic.
type PasswordHasher interface {
	// Hash derives a fresh random salt and the matching digest for a
	// plaintext password. Both values are returned hex-encoded.
	Hash(password string) (hash, salt string, err error)

	// Verify compares a candidate password against stored hash/salt material
	// using a constant-time comparison.
	Verify(storedHash, storedSalt, candidate string) bool
}
