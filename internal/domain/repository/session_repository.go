package repository

import (
	"context"
	"errors"

	"medlink/internal/domain/entity"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the token hash.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when the matching session is past its expiry window.
	ErrSessionExpired = errors.New("session expired")
)

// SessionRepository defines the standard operations for session persistence.
// Sessions are keyed by the SHA-256 hash of the cookie token; the raw token
// never reaches the store.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its token hash. Expired sessions
	// yield ErrSessionExpired.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Update saves the session's principal reference and pending flash messages.
	Update(ctx context.Context, session *entity.Session) error

	// DeleteByTokenHash removes a session. Deleting a missing session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
