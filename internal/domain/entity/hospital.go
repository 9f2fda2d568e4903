// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is a registered medical facility account. Hospitals authenticate
// with an email or username plus password and can search patient records.
type Hospital struct {
	ID         uuid.UUID // The unique identifier for the hospital account.
	Email      string    // Contact email, globally unique, accepted as a login identifier.
	Username   string    // Account name, globally unique, accepted as a login identifier.
	Credential Credential
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PrincipalType identifies Hospital as the session principal variant.
func (h *Hospital) PrincipalType() PrincipalType { return PrincipalTypeHospital }

// PrincipalID returns the record identifier stored in the session payload.
func (h *Hospital) PrincipalID() uuid.UUID { return h.ID }

// DisplayName returns the name shown in rendered pages.
func (h *Hospital) DisplayName() string { return h.Username }

func (h *Hospital) sealed() {}
