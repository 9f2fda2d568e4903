package usecase

import (
	"context"

	"medlink/internal/domain/entity"
)

// SessionUsecase owns login/logout state across requests. It maps an opaque
// cookie token to a server-side session row holding the principal reference
// {id, type} and any pending flash messages.
type SessionUsecase interface {
	// Establish stores the principal reference in the current session,
	// reusing the existing row when the token still resolves and creating a
	// fresh one otherwise. It returns the raw token for the cookie.
	Establish(ctx context.Context, currentToken string, principal entity.Principal) (string, error)

	// Resolve deserializes the session payload back into a live principal.
	// An anonymous or missing session yields (nil, nil); a session whose
	// record has vanished is destroyed and reported as an error so the
	// caller can proceed as anonymous.
	Resolve(ctx context.Context, token string) (entity.Principal, error)

	// Clear removes the session's principal reference, keeping the row so a
	// logout flash survives the redirect. Idempotent: clearing a missing or
	// anonymous session is not an error.
	Clear(ctx context.Context, token string) error

	// AddFlash queues a one-shot message for the next rendered page,
	// creating an anonymous session when none exists yet. It returns the raw
	// token the cookie must carry.
	AddFlash(ctx context.Context, token string, flash entity.FlashMessage) (string, error)

	// ConsumeFlash pops all pending flash messages exactly once.
	ConsumeFlash(ctx context.Context, token string) ([]entity.FlashMessage, error)
}
