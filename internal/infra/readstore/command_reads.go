package readstore

import (
	"context"

	"stayspot/internal/domain/booking"
	"stayspot/internal/infra"
	"stayspot/internal/infra/db"
	"stayspot/internal/pkg/pgconv"
	"stayspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReadStore serves the reads command handlers issue inside their own
// transaction, so it takes the transaction handle per call.
type CommandReadStore struct{}

func NewCommandReadStore() *CommandReadStore {
	return &CommandReadStore{}
}

func (s *CommandReadStore) SpotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.SpotSnapshot, error) {
	const query = `SELECT id, owner_id, name FROM spots WHERE id = $1`

	var snap shared.SpotSnapshot
	err := dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.OwnerID, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get spot snapshot", err)
	}
	return &snap, nil
}

func (s *CommandReadStore) BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, spot_id, user_id, start_date, end_date, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		snap               shared.BookingSnapshot
		startDate, endDate pgtype.Date
		createdAt, updated pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.SpotID, &snap.UserID, &startDate, &endDate, &createdAt, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking snapshot", err)
	}
	snap.StartDate = pgconv.DateFromPgtype(startDate)
	snap.EndDate = pgconv.DateFromPgtype(endDate)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &snap, nil
}

func (s *CommandReadStore) BookingRangesBySpot(ctx context.Context, dbtx db.DBTX, spotID uuid.UUID) ([]booking.StoredRange, error) {
	const query = `SELECT id, start_date, end_date FROM bookings WHERE spot_id = $1`

	rows, err := dbtx.Query(ctx, query, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking ranges", err)
	}
	defer rows.Close()

	var ranges []booking.StoredRange
	for rows.Next() {
		var (
			id                 uuid.UUID
			startDate, endDate pgtype.Date
		)
		if err := rows.Scan(&id, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking range", err)
		}
		r, err := booking.NewDateRange(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking range is invalid", err)
		}
		ranges = append(ranges, booking.StoredRange{BookingID: id, Range: r})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking ranges", err)
	}
	return ranges, nil
}

func (s *CommandReadStore) ReviewExists(ctx context.Context, dbtx db.DBTX, spotID, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM reviews WHERE spot_id = $1 AND user_id = $2)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, spotID, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
