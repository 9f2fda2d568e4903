package entity

import "github.com/google/uuid"

// PrincipalType disambiguates which store a session payload points at.
type PrincipalType string

const (
	// PrincipalTypeHospital tags a session owned by a hospital account.
	PrincipalTypeHospital PrincipalType = "Hospital"
	// PrincipalTypeUser tags a session owned by a patient account.
	PrincipalTypeUser PrincipalType = "User"
)

// String returns the string representation of the PrincipalType.
func (t PrincipalType) String() string {
	return string(t)
}

// IsValid checks if the PrincipalType is a known variant.
func (t PrincipalType) IsValid() bool {
	switch t {
	case PrincipalTypeHospital, PrincipalTypeUser:
		return true
	default:
		return false
	}
}

// Principal is the closed set of entities that can own a session: exactly
// *Hospital and *Patient implement it. Session deserialization constructs the
// variant matching the stored type tag and handlers type-switch on it.
type Principal interface {
	PrincipalType() PrincipalType
	PrincipalID() uuid.UUID
	DisplayName() string

	// sealed keeps the implementation set closed to this package.
	sealed()
}

// Credential holds the stored password material of a principal. The plaintext
// password is never retained; verification happens through a PasswordHasher
// that is independent of the record types.
type Credential struct {
	PasswordHash string // Hex-encoded PBKDF2 digest.
	PasswordSalt string // Hex-encoded per-record random salt.
}
