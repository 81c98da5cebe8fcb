//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayspot/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBookingOwnershipAndTemporal(t *testing.T) {
	userID := uuid.New()
	start := date(2025, 7, 10)
	b := booking.ReconstructBooking(
		uuid.New(), uuid.New(), userID,
		mustRange(t, start, date(2025, 7, 15)),
		time.Now(), time.Now(),
	)

	t.Run("ownership follows the booker id", func(t *testing.T) {
		assert.True(t, b.IsOwnedBy(userID))
		assert.False(t, b.IsOwnedBy(uuid.New()))
	})

	t.Run("a stay has started once now passes its first day", func(t *testing.T) {
		assert.False(t, b.HasStarted(start.Add(-time.Hour)))
		// Exactly midnight of the first day still counts as not started.
		assert.False(t, b.HasStarted(start))
		assert.True(t, b.HasStarted(start.Add(time.Hour)))
	})
}

func TestBookingReschedule(t *testing.T) {
	original := mustRange(t, date(2025, 7, 10), date(2025, 7, 15))
	moved := mustRange(t, date(2025, 8, 1), date(2025, 8, 5))
	b := booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), original, time.Now(), time.Now())

	updated := b.Reschedule(moved)

	assert.Equal(t, b.ID(), updated.ID())
	assert.Equal(t, moved, updated.DateRange())
	// The source aggregate is untouched.
	assert.Equal(t, original, b.DateRange())
}
