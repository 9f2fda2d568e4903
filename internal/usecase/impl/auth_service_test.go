package impl

import (
	"context"
	"testing"

	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	mockRepo "medlink/internal/mocks/repository"
	mockSvc "medlink/internal/mocks/service"
	"medlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	hospitalRepo *mockRepo.MockHospitalRepository
	patientRepo  *mockRepo.MockPatientRepository
	hasher       *mockSvc.MockPasswordHasher
}

func newAuthServiceWithMocks(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	mocks := &authServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		hospitalRepo: mockRepo.NewMockHospitalRepository(t),
		patientRepo:  mockRepo.NewMockPatientRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    mocks.txManager,
		HospitalRepo: mocks.hospitalRepo,
		PatientRepo:  mocks.patientRepo,
		Hasher:       mocks.hasher,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

// passThroughTx makes the transaction manager run the unit of work against
// the given factory, as the real manager would inside a transaction.
func passThroughTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_RegisterHospital_Success(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().HospitalRepo().Return(mocks.hospitalRepo)
	passThroughTx(t, mocks.txManager, factory)

	mocks.hasher.EXPECT().Hash("secret").Return("hash-hex", "salt-hex", nil)
	mocks.hospitalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Hospital")).
		Return(nil)

	hospital, err := service.RegisterHospital(ctx, &usecase.RegisterHospitalInput{
		Email:    "mercy@example.com",
		Username: "mercy-general",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "mercy@example.com", hospital.Email)
	assert.Equal(t, "mercy-general", hospital.Username)
	assert.Equal(t, "hash-hex", hospital.Credential.PasswordHash)
	assert.Equal(t, "salt-hex", hospital.Credential.PasswordSalt)
}

func TestAuthService_RegisterHospital_Duplicate(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().HospitalRepo().Return(mocks.hospitalRepo)
	passThroughTx(t, mocks.txManager, factory)

	mocks.hasher.EXPECT().Hash("secret").Return("hash-hex", "salt-hex", nil)
	mocks.hospitalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Hospital")).
		Return(domainerrors.ErrHospitalAlreadyExists)

	hospital, err := service.RegisterHospital(ctx, &usecase.RegisterHospitalInput{
		Email:    "mercy@example.com",
		Username: "mercy-general",
		Password: "secret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHospitalAlreadyExists))
	assert.Nil(t, hospital)
}

func TestAuthService_RegisterPatient_Success(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PatientRepo().Return(mocks.patientRepo)
	passThroughTx(t, mocks.txManager, factory)

	mocks.hasher.EXPECT().Hash("secret").Return("hash-hex", "salt-hex", nil)
	mocks.patientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Patient")).
		Return(nil)

	patient, err := service.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		PatientID:     "PT-1001",
		Username:      "jdoe",
		Name:          "Jane Doe",
		MobileNo:      "5550100",
		GuardianNo:    "5550101",
		BloodGrp:      "O+",
		HealthDetails: "no known allergies",
		Password:      "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "PT-1001", patient.PatientID)
	assert.Equal(t, "jdoe", patient.Username)
	assert.Equal(t, "hash-hex", patient.Credential.PasswordHash)
	assert.Equal(t, "salt-hex", patient.Credential.PasswordSalt)
}

func TestAuthService_RegisterPatient_DuplicateUsername(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PatientRepo().Return(mocks.patientRepo)
	passThroughTx(t, mocks.txManager, factory)

	mocks.hasher.EXPECT().Hash("secret").Return("hash-hex", "salt-hex", nil)
	mocks.patientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Patient")).
		Return(domainerrors.ErrPatientAlreadyExists)

	patient, err := service.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		PatientID:     "PT-1001",
		Username:      "jdoe",
		MobileNo:      "5550100",
		GuardianNo:    "5550101",
		BloodGrp:      "O+",
		HealthDetails: "no known allergies",
		Password:      "secret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientAlreadyExists))
	assert.Nil(t, patient)
}

func TestAuthService_LoginHospital_Success(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()
	hospital := newTestHospital()

	mocks.hospitalRepo.EXPECT().
		FindByIdentifier(ctx, "mercy-general").
		Return(hospital, nil)
	mocks.hasher.EXPECT().
		Verify(hospital.Credential.PasswordHash, hospital.Credential.PasswordSalt, "secret").
		Return(true)

	principal, err := service.LoginHospital(ctx, &usecase.LoginInput{
		Identifier: "mercy-general",
		Password:   "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalTypeHospital, principal.PrincipalType())
	assert.Equal(t, hospital.ID, principal.PrincipalID())
}

func TestAuthService_LoginHospital_WrongPassword(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()
	hospital := newTestHospital()

	mocks.hospitalRepo.EXPECT().
		FindByIdentifier(ctx, "mercy-general").
		Return(hospital, nil)
	mocks.hasher.EXPECT().
		Verify(hospital.Credential.PasswordHash, hospital.Credential.PasswordSalt, "wrong").
		Return(false)

	principal, err := service.LoginHospital(ctx, &usecase.LoginInput{
		Identifier: "mercy-general",
		Password:   "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidHospitalCredentials))
	assert.Nil(t, principal)
}

func TestAuthService_LoginHospital_UnknownIdentifier(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()

	mocks.hospitalRepo.EXPECT().
		FindByIdentifier(ctx, "nobody").
		Return(nil, repository.ErrHospitalNotFound)

	principal, err := service.LoginHospital(ctx, &usecase.LoginInput{
		Identifier: "nobody",
		Password:   "secret",
	})
	require.Error(t, err)
	// Unknown identifier and wrong password are indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidHospitalCredentials))
	assert.Nil(t, principal)
}

func TestAuthService_LoginPatient_Success(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()
	patient := newTestPatient()

	mocks.patientRepo.EXPECT().
		FindByUsername(ctx, "jdoe").
		Return(patient, nil)
	mocks.hasher.EXPECT().
		Verify(patient.Credential.PasswordHash, patient.Credential.PasswordSalt, "secret").
		Return(true)

	principal, err := service.LoginPatient(ctx, &usecase.LoginInput{
		Identifier: "jdoe",
		Password:   "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalTypeUser, principal.PrincipalType())
	assert.Equal(t, patient.ID, principal.PrincipalID())
}

func TestAuthService_LoginPatient_WrongPassword(t *testing.T) {
	service, mocks := newAuthServiceWithMocks(t)
	ctx := context.Background()
	patient := newTestPatient()

	mocks.patientRepo.EXPECT().
		FindByUsername(ctx, "jdoe").
		Return(patient, nil)
	mocks.hasher.EXPECT().
		Verify(patient.Credential.PasswordHash, patient.Credential.PasswordSalt, "wrong").
		Return(false)

	principal, err := service.LoginPatient(ctx, &usecase.LoginInput{
		Identifier: "jdoe",
		Password:   "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPatientCredentials))
	assert.Nil(t, principal)
}
