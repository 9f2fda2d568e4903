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

// hospitalRepository implements the domain.HospitalRepository interface using GORM.
type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository is the constructor for hospitalRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewHospitalRepository(db *gorm.DB) repository.HospitalRepository {
	return &hospitalRepository{db: db}
}

// FindByID retrieves a single hospital by its unique record ID.
func (repo *hospitalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hospitalM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by id")
	}

	return toHospitalDomain(&hospitalM), nil
}

// FindByIdentifier retrieves a hospital whose email or username matches the
// given login identifier.
func (repo *hospitalRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel
	err := repo.db.WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&hospitalM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by identifier")
	}

	return toHospitalDomain(&hospitalM), nil
}

// Create persists a new hospital. Uniqueness of email and username is
// enforced by the store atomically per write.
func (repo *hospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	hospitalM := fromHospitalDomain(hospital)

	if err := repo.db.WithContext(ctx).Create(hospitalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrHospitalAlreadyExists.WrapMessage("email or username already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required hospital information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hospital")
	}

	hospital.ID = hospitalM.ID
	hospital.CreatedAt = hospitalM.CreatedAt
	hospital.UpdatedAt = hospitalM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toHospitalDomain(data *model.HospitalModel) *entity.Hospital {
	if data == nil {
		return nil
	}

	return &entity.Hospital{
		ID:       data.ID,
		Email:    data.Email,
		Username: data.Username,
		Credential: entity.Credential{
			PasswordHash: data.PasswordHash,
			PasswordSalt: data.PasswordSalt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromHospitalDomain(hospital *entity.Hospital) *model.HospitalModel {
	if hospital == nil {
		return nil
	}

	return &model.HospitalModel{
		ID:           hospital.ID,
		Email:        hospital.Email,
		Username:     hospital.Username,
		PasswordHash: hospital.Credential.PasswordHash,
		PasswordSalt: hospital.Credential.PasswordSalt,
		CreatedAt:    hospital.CreatedAt,
		UpdatedAt:    hospital.UpdatedAt,
	}
}
