package postgres

import (
	"context"
	"encoding/json"
	"time"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM, err := fromSessionDomain(session)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A 256-bit token collided; treat as infrastructure failure.
			return domainerrors.NewDatabaseExecuteError(err, "session token collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by its token hash. A matching row past
// its expiry window yields ErrSessionExpired.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	session, err := toSessionDomain(&sessionM)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// Update saves the session's principal reference and pending flash messages.
func (repo *sessionRepository) Update(ctx context.Context, session *entity.Session) error {
	flash, err := marshalFlash(session.Flash)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ?", session.TokenHash).
		Updates(map[string]any{
			"principal_id":   session.PrincipalID,
			"principal_type": session.PrincipalType.String(),
			"flash":          flash,
		})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByTokenHash removes a session. Deleting a missing session is not an error.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) (*entity.Session, error) {
	var flash []entity.FlashMessage
	if len(data.Flash) > 0 {
		if err := json.Unmarshal(data.Flash, &flash); err != nil {
			return nil, errors.Wrap(err, "failed to decode session flash")
		}
	}

	return &entity.Session{
		ID:            data.ID,
		TokenHash:     data.TokenHash,
		PrincipalID:   data.PrincipalID,
		PrincipalType: entity.PrincipalType(data.PrincipalType),
		Flash:         flash,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
	}, nil
}

func fromSessionDomain(session *entity.Session) (*model.SessionModel, error) {
	flash, err := marshalFlash(session.Flash)
	if err != nil {
		return nil, err
	}

	return &model.SessionModel{
		ID:            session.ID,
		TokenHash:     session.TokenHash,
		PrincipalID:   session.PrincipalID,
		PrincipalType: session.PrincipalType.String(),
		Flash:         flash,
		ExpiresAt:     session.ExpiresAt,
		CreatedAt:     session.CreatedAt,
	}, nil
}

func marshalFlash(flash []entity.FlashMessage) ([]byte, error) {
	if len(flash) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(flash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session flash")
	}

	return data, nil
}
