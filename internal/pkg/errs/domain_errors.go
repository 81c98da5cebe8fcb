package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Spot errors
	ErrSpotNotFound = errors.New("spot not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("booking conflict")
	ErrInvalidDateRange = errors.New("invalid date range")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
