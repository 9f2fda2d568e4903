package postgres

import (
	"context"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the domain.PatientRepository interface using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

// FindByID retrieves a single patient by their unique record ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&patientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by id")
	}

	return toPatientDomain(&patientM), nil
}

// FindByUsername retrieves a patient by their login identifier.
func (repo *patientRepository) FindByUsername(ctx context.Context, username string) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&patientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by username")
	}

	return toPatientDomain(&patientM), nil
}

// FindByPatientID retrieves a patient by the external patient ID used by
// hospital-side search.
func (repo *patientRepository) FindByPatientID(ctx context.Context, patientID string) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		First(&patientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by patient id")
	}

	return toPatientDomain(&patientM), nil
}

// Create persists a new patient record.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPatientAlreadyExists.WrapMessage("username already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// UpdateDetails replaces exactly the mutable health-record fields. A column
// map keeps patient_id and the stored credential out of the statement.
func (repo *patientRepository) UpdateDetails(ctx context.Context, id uuid.UUID, details *entity.PatientDetails) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"username":       details.Username,
			"mobile_no":      details.MobileNo,
			"guardian_no":    details.GuardianNo,
			"blood_grp":      details.BloodGrp,
			"health_details": details.HealthDetails,
		})

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPatientAlreadyExists.WrapMessage("username already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update patient details")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:            data.ID,
		PatientID:     data.PatientID,
		Username:      data.Username,
		Name:          data.Name,
		MobileNo:      data.MobileNo,
		GuardianNo:    data.GuardianNo,
		BloodGrp:      data.BloodGrp,
		HealthDetails: data.HealthDetails,
		Credential: entity.Credential{
			PasswordHash: data.PasswordHash,
			PasswordSalt: data.PasswordSalt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPatientDomain(patient *entity.Patient) *model.PatientModel {
	if patient == nil {
		return nil
	}

	return &model.PatientModel{
		ID:            patient.ID,
		PatientID:     patient.PatientID,
		Username:      patient.Username,
		Name:          patient.Name,
		MobileNo:      patient.MobileNo,
		GuardianNo:    patient.GuardianNo,
		BloodGrp:      patient.BloodGrp,
		HealthDetails: patient.HealthDetails,
		PasswordHash:  patient.Credential.PasswordHash,
		PasswordSalt:  patient.Credential.PasswordSalt,
		CreatedAt:     patient.CreatedAt,
		UpdatedAt:     patient.UpdatedAt,
	}
}
