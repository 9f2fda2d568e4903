package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. TokenHash is the SHA-256 hex of
// the cookie token. PrincipalID/PrincipalType are empty for anonymous
// sessions (a flash queued before login). Flash holds the pending one-shot
// messages as a JSON document.
type SessionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TokenHash     string    `gorm:"type:varchar(64);unique;not null"`
	PrincipalID   uuid.UUID `gorm:"type:uuid"`
	PrincipalType string    `gorm:"type:varchar(20)"`
	Flash         []byte    `gorm:"type:jsonb"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
