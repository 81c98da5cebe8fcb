package commands

import (
	"context"
	"time"

	"stayspot/internal/domain/booking"
	"stayspot/internal/infra"
	"stayspot/internal/pkg/clock"
	"stayspot/internal/pkg/errs"
	"stayspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpotNotFound          = errs.New("spot not found")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrOwnerBooking          = errs.New("owners cannot book their own spot")
	ErrBookingNotOwned       = errs.New("booking not owned by user")
	ErrInvalidDateRange      = errs.New("invalid date range")
	ErrBookingConflict       = errs.New("booking conflict")
	ErrPastBookingModified   = errs.New("past bookings can't be modified")
	ErrStartedBookingDeleted = errs.New("bookings that have been started can't be deleted")
)

type CreateBookingRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

type UpdateBookingRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, spotID uuid.UUID, userID uuid.UUID, req CreateBookingRequest) (*CreateBookingResult, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, req UpdateBookingRequest) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// CreateBooking validates the stay dates, scans the spot's existing bookings
// for overlap, and rejects owners booking their own spot. The scan and the
// insert run under the spot's advisory lock so two concurrent requests for
// the same spot cannot both pass the overlap check.
func (uc *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	spotID uuid.UUID,
	userID uuid.UUID,
	req CreateBookingRequest,
) (*CreateBookingResult, error) {
	dateRange, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSpot(ctx, spotID, func(ctx context.Context, tx shared.Tx) error {
		spotSnap, derr := tx.Reads().SpotByID(ctx, spotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		ranges, derr := tx.Reads().BookingRangesBySpot(ctx, spotID)
		if derr != nil {
			return derr
		}
		if booking.HasConflict(dateRange, ranges, uuid.Nil) {
			return ErrBookingConflict
		}

		b, derr := booking.NewBooking(booking.SpotSpec{ID: spotSnap.ID, OwnerID: spotSnap.OwnerID}, userID, dateRange)
		if derr != nil {
			return errs.Mark(derr, ErrOwnerBooking)
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			// The exclusion constraint is the backstop for writes that
			// slipped past the scan.
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{BookingID: createdID}, nil
}

// UpdateBooking applies new stay dates to an existing booking. Check order is
// load (404), ownership, date validation, temporal lock on the STORED start
// date, then overlap against the spot's other bookings excluding this one.
func (uc *bookingCommandsImpl) UpdateBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
	req UpdateBookingRequest,
) error {
	// The spot id is needed to take the lock, so resolve the booking first;
	// it is re-read under the lock before any decision is made.
	pre, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	return uc.uow.WithinSpot(ctx, pre.SpotID, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		b, derr := bookingFromSnapshot(snap)
		if derr != nil {
			return derr
		}
		if !b.IsOwnedBy(actorID) {
			return ErrBookingNotOwned
		}

		dateRange, derr := booking.NewDateRange(req.StartDate, req.EndDate)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidDateRange)
		}

		// The temporal gate looks at the stored stay, not the requested one.
		if b.HasStarted(uc.clock.Now()) {
			return ErrPastBookingModified
		}

		ranges, derr := tx.Reads().BookingRangesBySpot(ctx, b.SpotID())
		if derr != nil {
			return derr
		}
		if booking.HasConflict(dateRange, ranges, b.ID()) {
			return ErrBookingConflict
		}

		updated := b.Reschedule(dateRange)
		if derr = tx.Bookings().UpdateDates(ctx, tx.DB(), updated.ID(), updated.DateRange()); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingConflict
			}
			return derr
		}
		return nil
	})
}

// DeleteBooking removes a booking. Check order is load (404), ownership,
// temporal lock; stays that have begun cannot be deleted.
func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		b, derr := bookingFromSnapshot(snap)
		if derr != nil {
			return derr
		}
		if !b.IsOwnedBy(actorID) {
			return ErrBookingNotOwned
		}
		if b.HasStarted(uc.clock.Now()) {
			return ErrStartedBookingDeleted
		}

		return tx.Bookings().Delete(ctx, tx.DB(), b.ID())
	})
}

// bookingFromSnapshot rehydrates the aggregate so ownership and temporal
// decisions run on it rather than on raw snapshot fields.
func bookingFromSnapshot(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	stored, err := booking.NewDateRange(snap.StartDate, snap.EndDate)
	if err != nil {
		return nil, errs.Wrap(err, "stored stay dates are invalid")
	}
	return booking.ReconstructBooking(snap.ID, snap.SpotID, snap.UserID, stored, snap.CreatedAt, snap.UpdatedAt), nil
}
