package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"medlink/config"
	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/domain/repository"
	"medlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionTokenLength = 32 // bytes of entropy behind each cookie token

// sessionService implements the SessionUsecase interface. It is the single
// place where the two principal types are deserialized: the stored type tag
// selects the store, and the matching variant of entity.Principal is built.
type sessionService struct {
	sessions  repository.SessionRepository
	hospitals repository.HospitalRepository
	patients  repository.PatientRepository
	ttl       time.Duration
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo  repository.SessionRepository
	HospitalRepo repository.HospitalRepository
	PatientRepo  repository.PatientRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessions:  params.SessionRepo,
		hospitals: params.HospitalRepo,
		patients:  params.PatientRepo,
		ttl:       params.Config.Session.TTL,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Establish stores {id, type} for the principal in the session, reusing the
// current session row when it still resolves.
func (srv *sessionService) Establish(ctx context.Context, currentToken string, principal entity.Principal) (string, error) {
	if currentToken != "" {
		session, err := srv.sessions.FindByTokenHash(ctx, hashToken(currentToken))
		switch {
		case err == nil:
			session.PrincipalID = principal.PrincipalID()
			session.PrincipalType = principal.PrincipalType()
			if err := srv.sessions.Update(ctx, session); err != nil {
				return "", errors.Wrap(err, "failed to reuse session")
			}

			srv.log(ctx).Debug("Session reused",
				slog.Any("principalID", principal.PrincipalID()),
				slog.String("principalType", principal.PrincipalType().String()))

			return currentToken, nil
		case errors.Is(err, repository.ErrSessionNotFound), errors.Is(err, repository.ErrSessionExpired):
			// Fall through and mint a fresh session.
		default:
			return "", errors.Wrap(err, "failed to look up current session")
		}
	}

	token, err := srv.createSession(ctx, principal.PrincipalID(), principal.PrincipalType(), nil)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Debug("Session established",
		slog.Any("principalID", principal.PrincipalID()),
		slog.String("principalType", principal.PrincipalType().String()))

	return token, nil
}

// Resolve deserializes the session payload {id, type} into a live principal.
func (srv *sessionService) Resolve(ctx context.Context, token string) (entity.Principal, error) {
	if token == "" {
		return nil, nil
	}

	session, err := srv.sessions.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if !session.Authenticated() {
		return nil, nil
	}

	principal, err := srv.loadPrincipal(ctx, session.PrincipalID, session.PrincipalType)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) || errors.Is(err, repository.ErrPatientNotFound) {
			// The account behind the session is gone. Destroy the session and
			// report it so the request proceeds as anonymous.
			if delErr := srv.sessions.DeleteByTokenHash(ctx, session.TokenHash); delErr != nil {
				srv.log(ctx).Error("Failed to destroy dangling session", slog.Any("error", delErr))
			}

			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session principal no longer exists")
		}

		return nil, errors.Wrap(err, "failed to deserialize session principal")
	}

	return principal, nil
}

// loadPrincipal selects the store by type tag and constructs the matching variant.
func (srv *sessionService) loadPrincipal(ctx context.Context, id uuid.UUID, principalType entity.PrincipalType) (entity.Principal, error) {
	switch principalType {
	case entity.PrincipalTypeHospital:
		return srv.hospitals.FindByID(ctx, id)
	case entity.PrincipalTypeUser:
		return srv.patients.FindByID(ctx, id)
	default:
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("unknown principal type " + principalType.String())
	}
}

// Clear removes the principal reference, keeping the row so the logout flash
// survives the redirect. Idempotent.
func (srv *sessionService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	session, err := srv.sessions.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil
		}

		return errors.Wrap(err, "failed to load session for logout")
	}

	if !session.Authenticated() {
		return nil
	}

	session.PrincipalID = uuid.Nil
	session.PrincipalType = ""
	if err := srv.sessions.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to clear session principal")
	}

	srv.log(ctx).Debug("Session cleared")

	return nil
}

// AddFlash queues a one-shot message, creating an anonymous session when the
// token does not resolve to one.
func (srv *sessionService) AddFlash(ctx context.Context, token string, flash entity.FlashMessage) (string, error) {
	if token != "" {
		session, err := srv.sessions.FindByTokenHash(ctx, hashToken(token))
		switch {
		case err == nil:
			session.Flash = append(session.Flash, flash)
			if err := srv.sessions.Update(ctx, session); err != nil {
				return "", errors.Wrap(err, "failed to queue flash message")
			}

			return token, nil
		case errors.Is(err, repository.ErrSessionNotFound), errors.Is(err, repository.ErrSessionExpired):
			// Fall through and mint an anonymous session for the flash.
		default:
			return "", errors.Wrap(err, "failed to look up session for flash")
		}
	}

	return srv.createSession(ctx, uuid.Nil, "", []entity.FlashMessage{flash})
}

// ConsumeFlash pops all pending flash messages exactly once.
func (srv *sessionService) ConsumeFlash(ctx context.Context, token string) ([]entity.FlashMessage, error) {
	if token == "" {
		return nil, nil
	}

	session, err := srv.sessions.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session for flash")
	}

	if len(session.Flash) == 0 {
		return nil, nil
	}

	pending := session.Flash
	session.Flash = nil
	if err := srv.sessions.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to consume flash messages")
	}

	return pending, nil
}

func (srv *sessionService) createSession(ctx context.Context, principalID uuid.UUID, principalType entity.PrincipalType, flash []entity.FlashMessage) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	session := &entity.Session{
		TokenHash:     hashToken(token),
		PrincipalID:   principalID,
		PrincipalType: principalType,
		Flash:         flash,
		ExpiresAt:     time.Now().Add(srv.ttl),
	}

	if err := srv.sessions.Create(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to create session")
	}

	return token, nil
}

// generateToken mints the opaque cookie token.
func generateToken() (string, error) {
	buf := make([]byte, sessionTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(buf), nil
}

// hashToken derives the stored lookup key; the raw token never hits the store.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
