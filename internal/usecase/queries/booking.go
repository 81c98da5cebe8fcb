package queries

import (
	"context"
	"time"

	"stayspot/internal/infra"
	"stayspot/internal/pkg/clock"
	"stayspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrSpotNotFound    = errs.New("spot not found")
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListBySpot shapes the result by requester: the spot owner sees every
	// booking with the booker's identity; anyone else sees date ranges only,
	// and only stays that have not yet begun.
	ListBySpot(ctx context.Context, spotID uuid.UUID, requesterID uuid.UUID) (*SpotBookingsView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CurrentBookingItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindBySpotWithUser(ctx context.Context, spotID uuid.UUID) ([]*BookingWithUserItem, error)
	FindUpcomingBySpot(ctx context.Context, spotID uuid.UUID, now time.Time) ([]*BookingPublicItem, error)
	FindByUserWithSpot(ctx context.Context, userID uuid.UUID) ([]*CurrentBookingItem, error)
}

type SpotOwnerReadStore interface {
	FindOwnerID(ctx context.Context, spotID uuid.UUID) (uuid.UUID, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	spots    SpotOwnerReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, spots SpotOwnerReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, spots: spots, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBySpot(ctx context.Context, spotID uuid.UUID, requesterID uuid.UUID) (*SpotBookingsView, error) {
	ownerID, err := q.spots.FindOwnerID(ctx, spotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	if ownerID == requesterID {
		items, err := q.bookings.FindBySpotWithUser(ctx, spotID)
		if err != nil {
			return nil, err
		}
		return &SpotBookingsView{IsOwner: true, OwnerItems: items}, nil
	}

	items, err := q.bookings.FindUpcomingBySpot(ctx, spotID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return &SpotBookingsView{IsOwner: false, PublicItems: items}, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*CurrentBookingItem, error) {
	return q.bookings.FindByUserWithSpot(ctx, userID)
}
