package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOwnSpot = errors.New("spot owners cannot book their own spot")

type SpotSpec struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

type Booking struct {
	id        uuid.UUID
	spotID    uuid.UUID
	userID    uuid.UUID
	dateRange DateRange
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(spot SpotSpec, userID uuid.UUID, dateRange DateRange) (*Booking, error) {
	if spot.OwnerID == userID {
		return nil, ErrOwnSpot
	}

	return &Booking{
		id:        uuid.New(),
		spotID:    spot.ID,
		userID:    userID,
		dateRange: dateRange,
	}, nil
}

func ReconstructBooking(
	id, spotID, userID uuid.UUID,
	dateRange DateRange,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		spotID:    spotID,
		userID:    userID,
		dateRange: dateRange,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule returns a copy with the new stay dates applied. Temporal and
// conflict checks belong to the caller; the aggregate only carries state.
func (b *Booking) Reschedule(dateRange DateRange) *Booking {
	clone := *b
	clone.dateRange = dateRange
	return &clone
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) HasStarted(now time.Time) bool {
	return b.dateRange.StartsBefore(now)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) SpotID() uuid.UUID    { return b.spotID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) DateRange() DateRange { return b.dateRange }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
