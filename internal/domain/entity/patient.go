package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a registered patient account together with its health record.
// The external PatientID is the key hospitals search by; it is distinct from
// the internal record ID used by the session payload.
type Patient struct {
	ID            uuid.UUID // The unique identifier for the patient record.
	PatientID     string    // External lookup key used by hospital-side search.
	Username      string    // Login identifier.
	Name          string
	MobileNo      string
	GuardianNo    string
	BloodGrp      string
	HealthDetails string
	Credential    Credential
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PatientDetails carries the mutable health-record fields of a Patient.
// The edit operation replaces exactly these fields; PatientID and the stored
// credential never change through it.
type PatientDetails struct {
	Username      string
	MobileNo      string
	GuardianNo    string
	BloodGrp      string
	HealthDetails string
}

// PrincipalType identifies Patient as the session principal variant. The tag
// is "User" on the wire, matching the session payloads written historically.
func (p *Patient) PrincipalType() PrincipalType { return PrincipalTypeUser }

// PrincipalID returns the record identifier stored in the session payload.
func (p *Patient) PrincipalID() uuid.UUID { return p.ID }

// DisplayName returns the name shown in rendered pages.
func (p *Patient) DisplayName() string { return p.Username }

func (p *Patient) sealed() {}
