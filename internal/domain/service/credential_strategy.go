package service

import (
	"context"

	"medlink/internal/domain/entity"
)

// CredentialStrategy is a named credential-verification procedure bound to one
// principal type and one backing store.
//
// Authenticate resolves exactly one of three outcomes: the matched principal,
// an invalid-credentials failure (the caller is never told whether the
// identifier or the password was wrong), or a propagated lookup error. It
// performs a read only and never mutates the store.
type CredentialStrategy interface {
	// Name identifies the strategy, e.g. "hospital-local".
	Name() string

	// Authenticate looks up the record matching the login identifier and
	// verifies the password against the stored hash.
	Authenticate(ctx context.Context, identifier, password string) (entity.Principal, error)
}
