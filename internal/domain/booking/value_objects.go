package booking

import (
	"errors"
	"time"
)

var ErrEndNotAfterStart = errors.New("endDate cannot be on or before startDate")

// DateRange is a stay expressed as a half-open interval [start, end) of
// calendar days. Time-of-day and zone information is discarded on
// construction so that comparisons operate on whole days only.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := truncateToDate(start)
	e := truncateToDate(end)

	// Equal dates are a zero-length stay and are rejected along with
	// inverted ranges.
	if !s.Before(e) {
		return DateRange{}, ErrEndNotAfterStart
	}

	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one calendar
// day. Ranges that merely touch (one ends the day the other starts) do not
// overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// StartsBefore reports whether the stay has already begun relative to now.
func (r DateRange) StartsBefore(now time.Time) bool {
	return r.start.Before(now)
}

// EntirelyAfter reports whether the whole stay is at or after now, which is
// what non-owners are allowed to see.
func (r DateRange) EntirelyAfter(now time.Time) bool {
	return !r.start.Before(now)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
