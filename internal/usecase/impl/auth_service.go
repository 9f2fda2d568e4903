package impl

import (
	"context"
	"log/slog"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	"medlink/internal/domain/repository"
	"medlink/internal/domain/service"
	"medlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	hasher           service.PasswordHasher
	hospitalStrategy service.CredentialStrategy
	patientStrategy  service.CredentialStrategy
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	HospitalRepo repository.HospitalRepository
	PatientRepo  repository.PatientRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. The two credential
// strategies are built here, each bound to its own store.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		hasher:           params.Hasher,
		hospitalStrategy: newHospitalStrategy(params.HospitalRepo, params.Hasher),
		patientStrategy:  newPatientStrategy(params.PatientRepo, params.Hasher),
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterHospital orchestrates the hospital registration process. The
// plaintext password never reaches the store; uniqueness conflicts surface as
// a conflict error and leave no partial record behind.
func (srv *authService) RegisterHospital(ctx context.Context, input *usecase.RegisterHospitalInput) (*entity.Hospital, error) {
	srv.log(ctx).Info("Starting hospital registration", slog.String("email", input.Email))

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	hospital := &entity.Hospital{
		Email:    input.Email,
		Username: input.Username,
		Credential: entity.Credential{
			PasswordHash: hash,
			PasswordSalt: salt,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.HospitalRepo().Create(ctx, hospital)
	})
	if err != nil {
		srv.log(ctx).Warn("Hospital registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute hospital registration transaction")
	}

	srv.log(ctx).Debug("Hospital registered", slog.Any("hospitalID", hospital.ID))

	return hospital, nil
}

// RegisterPatient orchestrates the patient registration process.
func (srv *authService) RegisterPatient(ctx context.Context, input *usecase.RegisterPatientInput) (*entity.Patient, error) {
	srv.log(ctx).Info("Starting patient registration", slog.String("username", input.Username))

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	patient := &entity.Patient{
		PatientID:     input.PatientID,
		Username:      input.Username,
		Name:          input.Name,
		MobileNo:      input.MobileNo,
		GuardianNo:    input.GuardianNo,
		BloodGrp:      input.BloodGrp,
		HealthDetails: input.HealthDetails,
		Credential: entity.Credential{
			PasswordHash: hash,
			PasswordSalt: salt,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PatientRepo().Create(ctx, patient)
	})
	if err != nil {
		srv.log(ctx).Warn("Patient registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute patient registration transaction")
	}

	srv.log(ctx).Debug("Patient registered", slog.Any("patientID", patient.ID))

	return patient, nil
}

// LoginHospital verifies hospital credentials through the hospital-local strategy.
func (srv *authService) LoginHospital(ctx context.Context, input *usecase.LoginInput) (entity.Principal, error) {
	return srv.login(ctx, srv.hospitalStrategy, input)
}

// LoginPatient verifies patient credentials through the user-local strategy.
func (srv *authService) LoginPatient(ctx context.Context, input *usecase.LoginInput) (entity.Principal, error) {
	return srv.login(ctx, srv.patientStrategy, input)
}

func (srv *authService) login(ctx context.Context, strategy service.CredentialStrategy, input *usecase.LoginInput) (entity.Principal, error) {
	principal, err := strategy.Authenticate(ctx, input.Identifier, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed",
			slog.String("strategy", strategy.Name()),
			slog.String("identifier", input.Identifier),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Login verified",
		slog.String("strategy", strategy.Name()),
		slog.Any("principalID", principal.PrincipalID()))

	return principal, nil
}
