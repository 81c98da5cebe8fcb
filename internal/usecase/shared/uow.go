package shared

import (
	"context"

	"stayspot/internal/domain/booking"
	"stayspot/internal/domain/review"
	"stayspot/internal/domain/spot"
	"stayspot/internal/domain/user"
	"stayspot/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSpot: Like Within, but additionally holds a per-spot advisory
	// lock for the whole transaction. Booking writes go through this so the
	// read-existing-then-write sequence is serialized per spot.
	WithinSpot(ctx context.Context, spotID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Spots() SpotRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	SpotByID(ctx context.Context, id uuid.UUID) (*SpotSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// BookingRangesBySpot returns every stay stored for the spot, for the
	// overlap scan. Must be called on a Tx's Reads() when the result guards
	// a write.
	BookingRangesBySpot(ctx context.Context, spotID uuid.UUID) ([]booking.StoredRange, error)
	ReviewExists(ctx context.Context, spotID, userID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateDates(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, dateRange booking.DateRange) error
	Delete(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error
}

type SpotRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *spot.Spot) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *spot.Spot) error
	// Delete removes the spot; its bookings and reviews go with it via
	// ON DELETE CASCADE.
	Delete(ctx context.Context, tx db.DBTX, spotID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
