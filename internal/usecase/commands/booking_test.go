//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayspot/internal/domain/booking"
	"stayspot/internal/infra"
	"stayspot/internal/infra/db"
	"stayspot/internal/pkg/clock"
	"stayspot/internal/usecase/commands"
	"stayspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ================================================================================
// In-memory unit of work
// ================================================================================

// fakeStore backs a UnitOfWork with maps so command flows run end to end
// without Postgres. The advisory lock has no fake; single-goroutine tests
// do not need it.
type fakeStore struct {
	spots    map[uuid.UUID]shared.SpotSnapshot
	bookings map[uuid.UUID]shared.BookingSnapshot

	// forceConflictOnWrite makes the next insert or update fail the way the
	// exclusion constraint does, to exercise the backstop path.
	forceConflictOnWrite bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		spots:    make(map[uuid.UUID]shared.SpotSnapshot),
		bookings: make(map[uuid.UUID]shared.BookingSnapshot),
	}
}

func (s *fakeStore) addSpot(ownerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.spots[id] = shared.SpotSnapshot{ID: id, OwnerID: ownerID, Name: "Test Spot"}
	return id
}

func (s *fakeStore) addBooking(spotID, userID uuid.UUID, start, end time.Time) uuid.UUID {
	id := uuid.New()
	s.bookings[id] = shared.BookingSnapshot{
		ID: id, SpotID: spotID, UserID: userID,
		StartDate: start, EndDate: end,
	}
	return id
}

func (s *fakeStore) SpotByID(_ context.Context, id uuid.UUID) (*shared.SpotSnapshot, error) {
	snap, ok := s.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (s *fakeStore) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (s *fakeStore) BookingRangesBySpot(_ context.Context, spotID uuid.UUID) ([]booking.StoredRange, error) {
	var ranges []booking.StoredRange
	for _, b := range s.bookings {
		if b.SpotID != spotID {
			continue
		}
		r, err := booking.NewDateRange(b.StartDate, b.EndDate)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, booking.StoredRange{BookingID: b.ID, Range: r})
	}
	return ranges, nil
}

func (s *fakeStore) ReviewExists(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.store.forceConflictOnWrite {
		return uuid.Nil, infra.WrapRepoErr("booking overlaps an existing booking", nil, infra.KindConflict)
	}
	r.store.bookings[b.ID()] = shared.BookingSnapshot{
		ID: b.ID(), SpotID: b.SpotID(), UserID: b.UserID(),
		StartDate: b.DateRange().Start(), EndDate: b.DateRange().End(),
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateDates(_ context.Context, _ db.DBTX, bookingID uuid.UUID, dateRange booking.DateRange) error {
	if r.store.forceConflictOnWrite {
		return infra.WrapRepoErr("booking overlaps an existing booking", nil, infra.KindConflict)
	}
	snap, ok := r.store.bookings[bookingID]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.StartDate = dateRange.Start()
	snap.EndDate = dateRange.End()
	r.store.bookings[bookingID] = snap
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, bookingID uuid.UUID) error {
	if _, ok := r.store.bookings[bookingID]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.store.bookings, bookingID)
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Spots() shared.SpotRepository       { return nil }
func (t *fakeTx) Reviews() shared.ReviewRepository   { return nil }
func (t *fakeTx) Users() shared.UserRepository       { return nil }
func (t *fakeTx) Reads() shared.CommandReads         { return t.store }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinSpot(ctx context.Context, _ uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.store }

// ================================================================================
// Helpers
// ================================================================================

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBookingCommands(store *fakeStore, now time.Time) commands.BookingCommands {
	return commands.NewBookingCommands(&fakeUoW{store: store}, clock.NewMockClock(now))
}

var testNow = date(2025, 6, 1)

// ================================================================================
// CreateBooking
// ================================================================================

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	guest := uuid.New()

	t.Run("creates booking on free dates", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		uc := newBookingCommands(store, testNow)

		result, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
			StartDate: date(2025, 7, 1),
			EndDate:   date(2025, 7, 5),
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		stored, ok := store.bookings[result.BookingID]
		require.True(t, ok)
		assert.Equal(t, spotID, stored.SpotID)
		assert.Equal(t, guest, stored.UserID)
		assert.Equal(t, date(2025, 7, 1), stored.StartDate)
		assert.Equal(t, date(2025, 7, 5), stored.EndDate)
	})

	t.Run("rejects inverted or zero-length ranges", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		uc := newBookingCommands(store, testNow)

		cases := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{"end before start", date(2025, 7, 5), date(2025, 7, 1)},
			{"end equals start", date(2025, 7, 1), date(2025, 7, 1)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
					StartDate: tc.start, EndDate: tc.end,
				})
				assert.ErrorIs(t, err, commands.ErrInvalidDateRange)
			})
		}
	})

	t.Run("unknown spot returns not found", func(t *testing.T) {
		store := newFakeStore()
		uc := newBookingCommands(store, testNow)

		_, err := uc.CreateBooking(ctx, uuid.New(), guest, commands.CreateBookingRequest{
			StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 5),
		})
		assert.ErrorIs(t, err, commands.ErrSpotNotFound)
	})

	t.Run("owner cannot book own spot", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		uc := newBookingCommands(store, testNow)

		_, err := uc.CreateBooking(ctx, spotID, owner, commands.CreateBookingRequest{
			StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 5),
		})
		assert.ErrorIs(t, err, commands.ErrOwnerBooking)
		assert.Empty(t, store.bookings)
	})

	t.Run("overlapping dates conflict", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		store.addBooking(spotID, uuid.New(), date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		cases := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{"straddles existing start", date(2025, 7, 8), date(2025, 7, 12)},
			{"straddles existing end", date(2025, 7, 14), date(2025, 7, 18)},
			{"inside existing", date(2025, 7, 11), date(2025, 7, 14)},
			{"surrounds existing", date(2025, 7, 8), date(2025, 7, 18)},
			{"identical dates", date(2025, 7, 10), date(2025, 7, 15)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
					StartDate: tc.start, EndDate: tc.end,
				})
				assert.ErrorIs(t, err, commands.ErrBookingConflict)
			})
		}
	})

	t.Run("back-to-back stays do not conflict", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		store.addBooking(spotID, uuid.New(), date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		t.Run("checkout day is bookable as checkin", func(t *testing.T) {
			_, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
				StartDate: date(2025, 7, 15), EndDate: date(2025, 7, 20),
			})
			assert.NoError(t, err)
		})

		t.Run("checkin day is usable as checkout", func(t *testing.T) {
			_, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
				StartDate: date(2025, 7, 5), EndDate: date(2025, 7, 10),
			})
			assert.NoError(t, err)
		})
	})

	t.Run("bookings on another spot do not conflict", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		otherSpot := store.addSpot(uuid.New())
		store.addBooking(otherSpot, uuid.New(), date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		_, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
			StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 15),
		})
		assert.NoError(t, err)
	})

	t.Run("exclusion constraint backstop surfaces as conflict", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		store.forceConflictOnWrite = true
		uc := newBookingCommands(store, testNow)

		_, err := uc.CreateBooking(ctx, spotID, guest, commands.CreateBookingRequest{
			StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 5),
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})
}

// ================================================================================
// UpdateBooking
// ================================================================================

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	guest := uuid.New()

	t.Run("reschedules own future booking", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		err := uc.UpdateBooking(ctx, bookingID, guest, commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5),
		})
		require.NoError(t, err)
		assert.Equal(t, date(2025, 8, 1), store.bookings[bookingID].StartDate)
		assert.Equal(t, date(2025, 8, 5), store.bookings[bookingID].EndDate)
	})

	t.Run("unknown booking returns not found before ownership check", func(t *testing.T) {
		store := newFakeStore()
		uc := newBookingCommands(store, testNow)

		err := uc.UpdateBooking(ctx, uuid.New(), uuid.New(), commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5),
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("only the booking holder may reschedule", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		err := uc.UpdateBooking(ctx, bookingID, uuid.New(), commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5),
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		err := uc.UpdateBooking(ctx, bookingID, guest, commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 5), EndDate: date(2025, 8, 1),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidDateRange)
	})

	t.Run("stays that already began cannot be rescheduled", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 5, 20), date(2025, 6, 10))
		uc := newBookingCommands(store, testNow)

		// The stored start date gates the check even when the new dates are
		// entirely in the future.
		err := uc.UpdateBooking(ctx, bookingID, guest, commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5),
		})
		assert.ErrorIs(t, err, commands.ErrPastBookingModified)
		assert.Equal(t, date(2025, 5, 20), store.bookings[bookingID].StartDate)
	})

	t.Run("own stored dates are excluded from the overlap scan", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		// Shift by one day; the new range overlaps the booking's own stored
		// range and nothing else.
		err := uc.UpdateBooking(ctx, bookingID, guest, commands.UpdateBookingRequest{
			StartDate: date(2025, 7, 11), EndDate: date(2025, 7, 16),
		})
		assert.NoError(t, err)
	})

	t.Run("overlap with another booking conflicts", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		store.addBooking(spotID, uuid.New(), date(2025, 8, 1), date(2025, 8, 5))
		uc := newBookingCommands(store, testNow)

		err := uc.UpdateBooking(ctx, bookingID, guest, commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 3), EndDate: date(2025, 8, 8),
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
		assert.Equal(t, date(2025, 7, 10), store.bookings[bookingID].StartDate)
	})

	t.Run("exclusion constraint backstop surfaces as conflict", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		store.forceConflictOnWrite = true
		uc := newBookingCommands(store, testNow)

		err := uc.UpdateBooking(ctx, bookingID, guest, commands.UpdateBookingRequest{
			StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5),
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})
}

// ================================================================================
// DeleteBooking
// ================================================================================

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	guest := uuid.New()

	t.Run("deletes own future booking", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		err := uc.DeleteBooking(ctx, bookingID, guest)
		require.NoError(t, err)
		assert.Empty(t, store.bookings)
	})

	t.Run("unknown booking returns not found", func(t *testing.T) {
		store := newFakeStore()
		uc := newBookingCommands(store, testNow)

		err := uc.DeleteBooking(ctx, uuid.New(), guest)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("only the booking holder may delete", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 7, 10), date(2025, 7, 15))
		uc := newBookingCommands(store, testNow)

		err := uc.DeleteBooking(ctx, bookingID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("stays that already began cannot be deleted", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, date(2025, 5, 20), date(2025, 6, 10))
		uc := newBookingCommands(store, testNow)

		err := uc.DeleteBooking(ctx, bookingID, guest)
		assert.ErrorIs(t, err, commands.ErrStartedBookingDeleted)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("booking starting today can still be deleted", func(t *testing.T) {
		store := newFakeStore()
		spotID := store.addSpot(owner)
		bookingID := store.addBooking(spotID, guest, testNow, date(2025, 6, 5))
		uc := newBookingCommands(store, testNow)

		err := uc.DeleteBooking(ctx, bookingID, guest)
		assert.NoError(t, err)
	})
}
