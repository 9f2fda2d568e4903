package impl

import (
	"context"
	"log/slog"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	patients repository.PatientRepository
	logger   *slog.Logger
}

// RecordServiceParams holds dependencies for recordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	PatientRepo repository.PatientRepository
	Logger      *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		patients: params.PatientRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchByPatientID looks up a patient record by the external patient ID.
func (srv *recordService) SearchByPatientID(ctx context.Context, patientID string) (*entity.Patient, error) {
	patient, err := srv.patients.FindByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			srv.log(ctx).Debug("Patient search missed", slog.String("patientID", patientID))

			return nil, errors.Wrap(domainerrors.ErrPatientNotFound, "no record for patient id")
		}

		return nil, errors.Wrap(err, "failed to search patient")
	}

	return patient, nil
}

// GetPatient fetches a patient by internal record ID.
func (srv *recordService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.patients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPatientNotFound, "no record for id")
		}

		return nil, errors.Wrap(err, "failed to load patient")
	}

	return patient, nil
}

// UpdateDetails persists exactly the submitted editable fields; the external
// patient ID and the stored credential are untouched by the statement.
func (srv *recordService) UpdateDetails(ctx context.Context, id uuid.UUID, input *usecase.UpdatePatientInput) error {
	details := &entity.PatientDetails{
		Username:      input.Username,
		MobileNo:      input.MobileNo,
		GuardianNo:    input.GuardianNo,
		BloodGrp:      input.BloodGrp,
		HealthDetails: input.HealthDetails,
	}

	if err := srv.patients.UpdateDetails(ctx, id, details); err != nil {
		srv.log(ctx).Warn("Patient update failed", slog.Any("id", id), slog.Any("error", err))

		// Every update failure, missing record included, surfaces as the
		// same user-facing error so the edit form shows one flash text.
		return errors.Wrapf(domainerrors.ErrPatientUpdateFailed, "update failed: %v", err)
	}

	srv.log(ctx).Debug("Patient details updated", slog.Any("id", id))

	return nil
}
