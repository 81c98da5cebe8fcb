package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type SpotSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type BookingSnapshot struct {
	ID        uuid.UUID
	SpotID    uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
