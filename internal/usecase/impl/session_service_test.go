package impl

import (
	"context"
	"testing"
	"time"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	mockRepo "medlink/internal/mocks/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceMocks struct {
	sessionRepo  *mockRepo.MockSessionRepository
	hospitalRepo *mockRepo.MockHospitalRepository
	patientRepo  *mockRepo.MockPatientRepository
}

func newSessionServiceWithMocks(t *testing.T) (usecase.SessionUsecase, *sessionServiceMocks) {
	mocks := &sessionServiceMocks{
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hospitalRepo: mockRepo.NewMockHospitalRepository(t),
		patientRepo:  mockRepo.NewMockPatientRepository(t),
	}

	service := NewSessionService(SessionServiceParams{
		SessionRepo:  mocks.sessionRepo,
		HospitalRepo: mocks.hospitalRepo,
		PatientRepo:  mocks.patientRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestSessionService_Establish_MintsFreshSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	hospital := newTestHospital()

	var created *entity.Session
	mocks.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			created = session
		}).
		Return(nil)

	token, err := service.Establish(ctx, "", hospital)
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 bytes of entropy, hex-encoded
	require.NotNil(t, created)
	assert.Equal(t, hashToken(token), created.TokenHash)
	assert.Equal(t, hospital.ID, created.PrincipalID)
	assert.Equal(t, entity.PrincipalTypeHospital, created.PrincipalType)
	assert.True(t, created.ExpiresAt.After(time.Now()))
}

func TestSessionService_Establish_ReusesLiveSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	patient := newTestPatient()
	token := "existing-token"

	session := &entity.Session{
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(session, nil)
	mocks.sessionRepo.EXPECT().
		Update(ctx, session).
		Return(nil)

	got, err := service.Establish(ctx, token, patient)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.Equal(t, patient.ID, session.PrincipalID)
	assert.Equal(t, entity.PrincipalTypeUser, session.PrincipalType)
}

func TestSessionService_Resolve_Hospital(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	hospital := newTestHospital()
	token := "hospital-token"

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(&entity.Session{
			TokenHash:     hashToken(token),
			PrincipalID:   hospital.ID,
			PrincipalType: entity.PrincipalTypeHospital,
			ExpiresAt:     time.Now().Add(time.Hour),
		}, nil)
	mocks.hospitalRepo.EXPECT().
		FindByID(ctx, hospital.ID).
		Return(hospital, nil)

	principal, err := service.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalTypeHospital, principal.PrincipalType())
	assert.Equal(t, hospital.ID, principal.PrincipalID())
}

// A hospital and a patient sharing the same record ID must never be confused:
// the stored type tag alone selects the store.
func TestSessionService_Resolve_TypeTagSelectsStore(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	sharedID := uuid.New()
	patient := newTestPatient()
	patient.ID = sharedID
	token := "patient-token"

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(&entity.Session{
			TokenHash:     hashToken(token),
			PrincipalID:   sharedID,
			PrincipalType: entity.PrincipalTypeUser,
			ExpiresAt:     time.Now().Add(time.Hour),
		}, nil)
	// No expectation on the hospital store: resolving a User session must not
	// touch it even for an identical ID.
	mocks.patientRepo.EXPECT().
		FindByID(ctx, sharedID).
		Return(patient, nil)

	principal, err := service.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalTypeUser, principal.PrincipalType())
	assert.Equal(t, sharedID, principal.PrincipalID())
}

func TestSessionService_Resolve_AnonymousSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	token := "anon-token"

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(&entity.Session{
			TokenHash: hashToken(token),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	principal, err := service.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestSessionService_Resolve_MissingOrExpiredSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken("gone")).
		Return(nil, repository.ErrSessionNotFound)
	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken("stale")).
		Return(nil, repository.ErrSessionExpired)

	principal, err := service.Resolve(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, principal)

	principal, err = service.Resolve(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestSessionService_Resolve_EmptyToken(t *testing.T) {
	service, _ := newSessionServiceWithMocks(t)

	principal, err := service.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestSessionService_Resolve_VanishedPrincipalDestroysSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	principalID := uuid.New()
	token := "dangling-token"

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(&entity.Session{
			TokenHash:     hashToken(token),
			PrincipalID:   principalID,
			PrincipalType: entity.PrincipalTypeUser,
			ExpiresAt:     time.Now().Add(time.Hour),
		}, nil)
	mocks.patientRepo.EXPECT().
		FindByID(ctx, principalID).
		Return(nil, repository.ErrPatientNotFound)
	mocks.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, hashToken(token)).
		Return(nil)

	principal, err := service.Resolve(ctx, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
	assert.Nil(t, principal)
}

func TestSessionService_Clear_KeepsRowForFlash(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	token := "logout-token"

	session := &entity.Session{
		TokenHash:     hashToken(token),
		PrincipalID:   uuid.New(),
		PrincipalType: entity.PrincipalTypeHospital,
		ExpiresAt:     time.Now().Add(time.Hour),
	}

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(session, nil)
	mocks.sessionRepo.EXPECT().
		Update(ctx, session).
		Return(nil)

	require.NoError(t, service.Clear(ctx, token))
	assert.Equal(t, uuid.Nil, session.PrincipalID)
	assert.False(t, session.Authenticated())
}

func TestSessionService_Clear_Idempotent(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()

	// No token at all.
	require.NoError(t, service.Clear(ctx, ""))

	// Token without a backing row.
	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken("gone")).
		Return(nil, repository.ErrSessionNotFound)
	require.NoError(t, service.Clear(ctx, "gone"))

	// Already-anonymous session: no update issued.
	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken("anon")).
		Return(&entity.Session{
			TokenHash: hashToken("anon"),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	require.NoError(t, service.Clear(ctx, "anon"))
}

func TestSessionService_AddFlash_AppendsToExistingSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	token := "flash-token"

	session := &entity.Session{
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(session, nil)
	mocks.sessionRepo.EXPECT().
		Update(ctx, session).
		Return(nil)

	got, err := service.AddFlash(ctx, token, entity.FlashMessage{Kind: entity.FlashSuccess, Text: "Logged in successfully!"})
	require.NoError(t, err)
	assert.Equal(t, token, got)
	require.Len(t, session.Flash, 1)
	assert.Equal(t, "Logged in successfully!", session.Flash[0].Text)
}

func TestSessionService_AddFlash_MintsAnonymousSession(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()

	var created *entity.Session
	mocks.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			created = session
		}).
		Return(nil)

	token, err := service.AddFlash(ctx, "", entity.FlashMessage{Kind: entity.FlashError, Text: "User not found"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, created)
	assert.Equal(t, uuid.Nil, created.PrincipalID)
	assert.False(t, created.Authenticated())
	require.Len(t, created.Flash, 1)
	assert.Equal(t, entity.FlashError, created.Flash[0].Kind)
}

func TestSessionService_ConsumeFlash_PopsExactlyOnce(t *testing.T) {
	service, mocks := newSessionServiceWithMocks(t)
	ctx := context.Background()
	token := "flash-token"

	session := &entity.Session{
		TokenHash: hashToken(token),
		Flash: []entity.FlashMessage{
			{Kind: entity.FlashSuccess, Text: "Logged in successfully!"},
			{Kind: entity.FlashError, Text: "User not found"},
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mocks.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashToken(token)).
		Return(session, nil).
		Twice()
	mocks.sessionRepo.EXPECT().
		Update(ctx, session).
		Return(nil).
		Once()

	flashes, err := service.ConsumeFlash(ctx, token)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, "Logged in successfully!", flashes[0].Text)

	// Second consume finds nothing and issues no update.
	flashes, err = service.ConsumeFlash(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}
