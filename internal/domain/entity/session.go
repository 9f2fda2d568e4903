package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flash message kinds. A flash is rendered on the next page only and then
// discarded.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// FlashMessage is a one-shot notification queued for the next rendered page.
type FlashMessage struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Session is the server-side state behind one browser session cookie. The raw
// token travels only in the cookie; the store keeps a SHA-256 hash of it.
//
// A session may be anonymous (no principal reference) so that a flash message
// can survive a redirect before anyone is logged in. Logout clears the
// principal reference but keeps the row for the same reason.
type Session struct {
	ID            uuid.UUID
	TokenHash     string
	PrincipalID   uuid.UUID      // uuid.Nil while anonymous.
	PrincipalType PrincipalType  // Empty while anonymous.
	Flash         []FlashMessage // Pending one-shot messages.
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

// Authenticated reports whether the session references a principal.
func (s *Session) Authenticated() bool {
	return s.PrincipalID != uuid.Nil && s.PrincipalType.IsValid()
}

// Expired reports whether the session has passed its expiry window.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
