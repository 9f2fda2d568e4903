// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/domain/service"

	"github.com/pkg/errors"
)

// The two local credential strategies, one per principal type. Both wrap a
// username+password check against their backing store and are strictly
// read-only. The failure they return is generic on purpose: callers cannot
// tell an unknown identifier from a wrong password.

type hospitalStrategy struct {
	hospitals repository.HospitalRepository
	hasher    service.PasswordHasher
}

func newHospitalStrategy(hospitals repository.HospitalRepository, hasher service.PasswordHasher) service.CredentialStrategy {
	return &hospitalStrategy{hospitals: hospitals, hasher: hasher}
}

func (s *hospitalStrategy) Name() string { return "hospital-local" }

// Authenticate resolves the identifier as an email or a username.
func (s *hospitalStrategy) Authenticate(ctx context.Context, identifier, password string) (entity.Principal, error) {
	hospital, err := s.hospitals.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidHospitalCredentials, "unknown identifier")
		}

		return nil, errors.Wrap(err, "hospital credential lookup failed")
	}

	if !s.hasher.Verify(hospital.Credential.PasswordHash, hospital.Credential.PasswordSalt, password) {
		return nil, errors.Wrap(domainerrors.ErrInvalidHospitalCredentials, "password mismatch")
	}

	return hospital, nil
}

type patientStrategy struct {
	patients repository.PatientRepository
	hasher   service.PasswordHasher
}

func newPatientStrategy(patients repository.PatientRepository, hasher service.PasswordHasher) service.CredentialStrategy {
	return &patientStrategy{patients: patients, hasher: hasher}
}

func (s *patientStrategy) Name() string { return "user-local" }

// Authenticate resolves the identifier as a patient username.
func (s *patientStrategy) Authenticate(ctx context.Context, identifier, password string) (entity.Principal, error) {
	patient, err := s.patients.FindByUsername(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidPatientCredentials, "unknown identifier")
		}

		return nil, errors.Wrap(err, "patient credential lookup failed")
	}

	if !s.hasher.Verify(patient.Credential.PasswordHash, patient.Credential.PasswordSalt, password) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPatientCredentials, "password mismatch")
	}

	return patient, nil
}
