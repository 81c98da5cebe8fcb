//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayspot/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2025, 1, 10), date(2025, 1, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2025, 1, 10), r.Start())
		assert.Equal(t, date(2025, 1, 15), r.End())
		assert.Equal(t, 5, r.Nights())
	})

	t.Run("equal dates rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2025, 1, 10), date(2025, 1, 10))
		assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2025, 1, 15), date(2025, 1, 10))
		assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		start := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
		end := time.Date(2025, 1, 11, 0, 1, 0, 0, time.UTC)
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 1, 10), r.Start())
		assert.Equal(t, date(2025, 1, 11), r.End())
	})

	t.Run("same calendar day with different times rejected", func(t *testing.T) {
		start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 10, 20, 0, 0, 0, time.UTC)
		_, err := booking.NewDateRange(start, end)
		assert.ErrorIs(t, err, booking.ErrEndNotAfterStart)
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, date(2025, 1, 10), date(2025, 1, 15))

	testCases := []struct {
		name     string
		other    booking.DateRange
		overlaps bool
	}{
		{
			name:     "identical range",
			other:    mustRange(t, date(2025, 1, 10), date(2025, 1, 15)),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    mustRange(t, date(2025, 1, 14), date(2025, 1, 20)),
			overlaps: true,
		},
		{
			name:     "partial overlap at head",
			other:    mustRange(t, date(2025, 1, 5), date(2025, 1, 11)),
			overlaps: true,
		},
		{
			name:     "fully contained",
			other:    mustRange(t, date(2025, 1, 11), date(2025, 1, 13)),
			overlaps: true,
		},
		{
			name:     "fully containing",
			other:    mustRange(t, date(2025, 1, 1), date(2025, 1, 31)),
			overlaps: true,
		},
		{
			name:     "adjacent after checkout",
			other:    mustRange(t, date(2025, 1, 15), date(2025, 1, 20)),
			overlaps: false,
		},
		{
			name:     "adjacent before checkin",
			other:    mustRange(t, date(2025, 1, 5), date(2025, 1, 10)),
			overlaps: false,
		},
		{
			name:     "disjoint",
			other:    mustRange(t, date(2025, 2, 1), date(2025, 2, 5)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			// The predicate is symmetric
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestDateRange_Temporal(t *testing.T) {
	r := mustRange(t, date(2025, 1, 10), date(2025, 1, 15))

	t.Run("started when now is past check-in", func(t *testing.T) {
		assert.True(t, r.StartsBefore(date(2025, 1, 11)))
		assert.False(t, r.EntirelyAfter(date(2025, 1, 11)))
	})

	t.Run("upcoming when now is before check-in", func(t *testing.T) {
		assert.False(t, r.StartsBefore(date(2025, 1, 9)))
		assert.True(t, r.EntirelyAfter(date(2025, 1, 9)))
	})

	t.Run("check-in at midnight is still upcoming", func(t *testing.T) {
		assert.False(t, r.StartsBefore(date(2025, 1, 10)))
	})
}
