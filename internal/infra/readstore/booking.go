package readstore

import (
	"context"
	"time"

	"stayspot/internal/infra"
	"stayspot/internal/infra/db"
	"stayspot/internal/pkg/pgconv"
	"stayspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, spot_id, user_id, start_date, end_date, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		view               queries.BookingView
		startDate, endDate pgtype.Date
		createdAt, updated pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.SpotID, &view.UserID, &startDate, &endDate, &createdAt, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	view.StartDate = pgconv.DateFromPgtype(startDate)
	view.EndDate = pgconv.DateFromPgtype(endDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &view, nil
}

func (r *BookingReadStore) FindBySpotWithUser(ctx context.Context, spotID uuid.UUID) ([]*queries.BookingWithUserItem, error) {
	const query = `
		SELECT b.id, b.spot_id, b.user_id, u.email, b.start_date, b.end_date, b.created_at, b.updated_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.spot_id = $1
		ORDER BY b.start_date, b.id`

	rows, err := r.db.Query(ctx, query, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings by spot", err)
	}
	defer rows.Close()

	var items []*queries.BookingWithUserItem
	for rows.Next() {
		var (
			item               queries.BookingWithUserItem
			startDate, endDate pgtype.Date
			createdAt, updated pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.SpotID, &item.UserID, &item.UserEmail,
			&startDate, &endDate, &createdAt, &updated,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		item.UpdatedAt = pgconv.TimeFromPgtype(updated)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

// FindUpcomingBySpot keeps only stays that have not yet begun; past and
// in-progress stays are not shown to non-owners.
func (r *BookingReadStore) FindUpcomingBySpot(ctx context.Context, spotID uuid.UUID, now time.Time) ([]*queries.BookingPublicItem, error) {
	const query = `
		SELECT spot_id, start_date, end_date
		FROM bookings
		WHERE spot_id = $1 AND start_date >= $2
		ORDER BY start_date`

	rows, err := r.db.Query(ctx, query, spotID, pgconv.DateToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get upcoming bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingPublicItem
	for rows.Next() {
		var (
			item               queries.BookingPublicItem
			startDate, endDate pgtype.Date
		)
		if err := rows.Scan(&item.SpotID, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

func (r *BookingReadStore) FindByUserWithSpot(ctx context.Context, userID uuid.UUID) ([]*queries.CurrentBookingItem, error) {
	const query = `
		SELECT b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at,
		       s.id, s.owner_id, s.address, s.city, s.state, s.country, s.lat, s.lng, s.name, s.price_cents,
		       s.preview_image_url
		FROM bookings b
		JOIN spots s ON s.id = b.spot_id
		WHERE b.user_id = $1
		ORDER BY b.start_date, b.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get bookings by user", err)
	}
	defer rows.Close()

	var items []*queries.CurrentBookingItem
	for rows.Next() {
		var (
			item               queries.CurrentBookingItem
			startDate, endDate pgtype.Date
			createdAt, updated pgtype.Timestamptz
			previewImage       pgtype.Text
		)
		if err := rows.Scan(
			&item.ID, &item.SpotID, &item.UserID, &startDate, &endDate, &createdAt, &updated,
			&item.Spot.ID, &item.Spot.OwnerID, &item.Spot.Address, &item.Spot.City,
			&item.Spot.State, &item.Spot.Country, &item.Spot.Lat, &item.Spot.Lng,
			&item.Spot.Name, &item.Spot.PriceCents, &previewImage,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.Spot.PreviewImage = pgconv.StringPtrFromPgtype(previewImage)
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		item.UpdatedAt = pgconv.TimeFromPgtype(updated)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
