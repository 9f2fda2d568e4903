package repository

import (
	"context"
	"errors"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is a domain-specific error returned when a patient is not found.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the standard operations for patient persistence.
type PatientRepository interface {
	// FindByID retrieves a single patient by their unique record ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindByUsername retrieves a patient by their login identifier.
	FindByUsername(ctx context.Context, username string) (*entity.Patient, error)

	// FindByPatientID retrieves a patient by the external patient ID used by
	// hospital-side search.
	FindByPatientID(ctx context.Context, patientID string) (*entity.Patient, error)

	// Create persists a new patient record.
	Create(ctx context.Context, patient *entity.Patient) error

	// UpdateDetails replaces exactly the mutable health-record fields of the
	// patient identified by id. PatientID and the stored credential are never
	// touched by this operation.
	UpdateDetails(ctx context.Context, id uuid.UUID, details *entity.PatientDetails) error
}
