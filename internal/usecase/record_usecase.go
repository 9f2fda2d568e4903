package usecase

import (
	"context"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePatientInput carries the editable health-record fields. The external
// patient ID and the stored credential are not part of it and never change
// through the edit operation.
type UpdatePatientInput struct {
	Username      string `form:"username" validate:"required"`
	MobileNo      string `form:"mobileNo" validate:"required"`
	GuardianNo    string `form:"guardianNo" validate:"required"`
	BloodGrp      string `form:"bloodGrp" validate:"required"`
	HealthDetails string `form:"healthDetails" validate:"required"`
}

// RecordUsecase defines the hospital-side search and the patient record edit.
type RecordUsecase interface {
	// SearchByPatientID looks up a patient by the external patient ID.
	SearchByPatientID(ctx context.Context, patientID string) (*entity.Patient, error)

	// GetPatient fetches a patient by internal record ID (edit form rendering).
	GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// UpdateDetails persists exactly the submitted editable fields.
	UpdateDetails(ctx context.Context, id uuid.UUID, input *UpdatePatientInput) error
}
