package request

import (
	"errors"
	"time"
)

var errInvalidDateFormat = errors.New("dates must be in YYYY-MM-DD format")

// BookingDatesRequest is the body of both booking creation and reschedule.
type BookingDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// ParseDates converts the calendar-day strings to UTC midnights. Range
// validation (ordering, zero length) stays in the domain.
func (r BookingDatesRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.ParseInLocation(time.DateOnly, r.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDateFormat
	}
	end, err = time.ParseInLocation(time.DateOnly, r.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidDateFormat
	}
	return start, end, nil
}
