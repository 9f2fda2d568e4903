package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table. PatientID is the external key
// hospitals search by and is indexed but deliberately not unique (the
// original data carried no such constraint).
type PatientModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PatientID     string    `gorm:"type:varchar(100);not null;index"`
	Username      string    `gorm:"type:varchar(100);unique;not null"`
	Name          string    `gorm:"type:varchar(100)"`
	MobileNo      string    `gorm:"type:varchar(30);not null"`
	GuardianNo    string    `gorm:"type:varchar(30);not null"`
	BloodGrp      string    `gorm:"type:varchar(10);not null"`
	HealthDetails string    `gorm:"type:text;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	PasswordSalt  string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
