// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medlink/internal/domain/entity"
)

// --- Input DTOs ---
// Inputs are bound straight from the HTML forms, so the form tags mirror the
// historical field names the templates post.

// RegisterHospitalInput defines the data required to register a new hospital.
type RegisterHospitalInput struct {
	Email    string `form:"email" validate:"required"`
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterPatientInput defines the data required to register a new patient.
type RegisterPatientInput struct {
	PatientID     string `form:"userId" validate:"required"`
	Username      string `form:"username" validate:"required"`
	Name          string `form:"name"`
	MobileNo      string `form:"mobileNo" validate:"required"`
	GuardianNo    string `form:"guardianNo" validate:"required"`
	BloodGrp      string `form:"bloodGrp" validate:"required"`
	HealthDetails string `form:"healthDetails" validate:"required"`
	Password      string `form:"password" validate:"required"`
}

// LoginInput defines the data required to log in. Hospitals may put their
// email or their username in the identifier field; patients their username.
type LoginInput struct {
	Identifier string `form:"username" validate:"required"`
	Password   string `form:"password" validate:"required"`
}

// AuthUsecase defines the registration and credential-verification operations.
// Login never mutates session state; establishing the session afterwards is
// the SessionUsecase's job, so a failed login leaves any prior session intact.
type AuthUsecase interface {
	RegisterHospital(ctx context.Context, input *RegisterHospitalInput) (*entity.Hospital, error)
	RegisterPatient(ctx context.Context, input *RegisterPatientInput) (*entity.Patient, error)
	LoginHospital(ctx context.Context, input *LoginInput) (entity.Principal, error)
	LoginPatient(ctx context.Context, input *LoginInput) (entity.Principal, error)
}
