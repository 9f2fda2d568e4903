// Package model holds the GORM persistence models. They stay separate from
// the domain entities; mappers in the postgres package convert between them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// HospitalModel mirrors the 'hospitals' table. Email and username carry
// unique indexes; the store rejects the second of two racing registrations
// with a duplicate-key error.
type HospitalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PasswordSalt string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (HospitalModel) TableName() string {
	return "hospitals"
}
