package impl

import (
	"io"
	"log/slog"
	"time"

	"medlink/config"
	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		CookieName: "medlink_session",
		TTL:        time.Hour,
	}

	return cfg
}

func newTestHospital() *entity.Hospital {
	return &entity.Hospital{
		ID:       uuid.New(),
		Email:    "mercy@example.com",
		Username: "mercy-general",
		Credential: entity.Credential{
			PasswordHash: "deadbeef",
			PasswordSalt: "cafebabe",
		},
	}
}

func newTestPatient() *entity.Patient {
	return &entity.Patient{
		ID:            uuid.New(),
		PatientID:     "PT-1001",
		Username:      "jdoe",
		Name:          "Jane Doe",
		MobileNo:      "5550100",
		GuardianNo:    "5550101",
		BloodGrp:      "O+",
		HealthDetails: "no known allergies",
		Credential: entity.Credential{
			PasswordHash: "deadbeef",
			PasswordSalt: "cafebabe",
		},
	}
}
