//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayspot/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stored(t *testing.T, id uuid.UUID, start, end time.Time) booking.StoredRange {
	t.Helper()
	return booking.StoredRange{BookingID: id, Range: mustRange(t, start, end)}
}

func TestFindConflicts(t *testing.T) {
	bookingA := uuid.New()
	bookingB := uuid.New()

	existing := []booking.StoredRange{
		stored(t, bookingA, date(2025, 1, 10), date(2025, 1, 15)),
		stored(t, bookingB, date(2025, 2, 1), date(2025, 2, 5)),
	}

	t.Run("overlapping candidate conflicts", func(t *testing.T) {
		candidate := mustRange(t, date(2025, 1, 14), date(2025, 1, 20))

		conflicts := booking.FindConflicts(candidate, existing, uuid.Nil)
		require.Len(t, conflicts, 1)
		assert.Equal(t, bookingA, conflicts[0].BookingID)
		assert.True(t, booking.HasConflict(candidate, existing, uuid.Nil))
	})

	t.Run("adjacent candidate does not conflict", func(t *testing.T) {
		candidate := mustRange(t, date(2025, 1, 15), date(2025, 1, 20))
		assert.False(t, booking.HasConflict(candidate, existing, uuid.Nil))
	})

	t.Run("all conflicting bookings are reported", func(t *testing.T) {
		candidate := mustRange(t, date(2025, 1, 1), date(2025, 3, 1))

		got := booking.FindConflicts(candidate, existing, uuid.Nil)
		if diff := cmp.Diff(existing, got, cmp.AllowUnexported(booking.StoredRange{}, booking.DateRange{})); diff != "" {
			t.Errorf("conflicts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("booking under update is excluded by id", func(t *testing.T) {
		// Candidate overlaps booking A's own stored range; excluding A by id
		// must not report a self-conflict.
		candidate := mustRange(t, date(2025, 1, 12), date(2025, 1, 17))

		assert.True(t, booking.HasConflict(candidate, existing, uuid.Nil))
		assert.False(t, booking.HasConflict(candidate, existing, bookingA))
	})

	t.Run("exclusion is by id not by date equality", func(t *testing.T) {
		// A second booking with the exact same dates as the excluded one
		// still conflicts.
		twin := uuid.New()
		withTwin := append(existing, stored(t, twin, date(2025, 1, 10), date(2025, 1, 15)))

		candidate := mustRange(t, date(2025, 1, 10), date(2025, 1, 15))
		conflicts := booking.FindConflicts(candidate, withTwin, bookingA)
		require.Len(t, conflicts, 1)
		assert.Equal(t, twin, conflicts[0].BookingID)
	})

	t.Run("no existing bookings", func(t *testing.T) {
		candidate := mustRange(t, date(2025, 1, 10), date(2025, 1, 15))
		assert.False(t, booking.HasConflict(candidate, nil, uuid.Nil))
	})
}

func TestNewBooking(t *testing.T) {
	owner := uuid.New()
	guest := uuid.New()
	spot := booking.SpotSpec{ID: uuid.New(), OwnerID: owner}
	r := mustRange(t, date(2025, 1, 10), date(2025, 1, 15))

	t.Run("guest can book", func(t *testing.T) {
		b, err := booking.NewBooking(spot, guest, r)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, spot.ID, b.SpotID())
		assert.Equal(t, guest, b.UserID())
		assert.True(t, b.IsOwnedBy(guest))
	})

	t.Run("owner cannot book own spot", func(t *testing.T) {
		_, err := booking.NewBooking(spot, owner, r)
		assert.ErrorIs(t, err, booking.ErrOwnSpot)
	})
}
