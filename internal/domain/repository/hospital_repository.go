// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"medlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHospitalNotFound is a domain-specific error returned when a hospital is not found.
var ErrHospitalNotFound = errors.New("hospital not found")

// HospitalRepository defines the standard operations for hospital persistence.
type HospitalRepository interface {
	// FindByID retrieves a single hospital by its unique record ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hospital, error)

	// FindByIdentifier retrieves a hospital whose email or username matches
	// the given login identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Hospital, error)

	// Create persists a new hospital. The store enforces uniqueness of email
	// and username atomically per write.
	Create(ctx context.Context, hospital *entity.Hospital) error
}
