package repository

import (
	"context"

	"stayspot/internal/domain/booking"
	"stayspot/internal/infra"
	"stayspot/internal/infra/db"
	"stayspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, spot_id, user_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.SpotID(),
		b.UserID(),
		pgconv.DateToPgtype(b.DateRange().Start()),
		pgconv.DateToPgtype(b.DateRange().End()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateDates(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, dateRange booking.DateRange) error {
	const query = `
		UPDATE bookings
		SET start_date = $2, end_date = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		bookingID,
		pgconv.DateToPgtype(dateRange.Start()),
		pgconv.DateToPgtype(dateRange.End()),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking dates", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
