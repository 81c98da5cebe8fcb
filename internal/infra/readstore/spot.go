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

type SpotReadStore struct {
	db db.DBTX
}

func NewSpotReadStore(dbtx db.DBTX) *SpotReadStore {
	return &SpotReadStore{db: dbtx}
}

const spotViewColumns = `
	s.id, s.owner_id, s.address, s.city, s.state, s.country,
	s.lat, s.lng, s.name, s.description, s.price_cents, s.preview_image_url,
	avg(r.rating)::numeric AS avg_rating,
	s.created_at, s.updated_at`

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	query := `
		SELECT ` + spotViewColumns + `
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id
		WHERE s.id = $1
		GROUP BY s.id`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanSpotView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get spot by id", err)
	}
	return view, nil
}

func (r *SpotReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.SpotView, error) {
	query := `
		SELECT ` + spotViewColumns + `
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $1`

	return r.querySpotViews(ctx, query, limit)
}

func (r *SpotReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SpotView, error) {
	query := `
		SELECT ` + spotViewColumns + `
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id
		WHERE (s.created_at, s.id) < ($1, $2)
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $3`

	return r.querySpotViews(ctx, query, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *SpotReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.SpotView, error) {
	query := `
		SELECT ` + spotViewColumns + `
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id
		WHERE s.owner_id = $1
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.id DESC`

	return r.querySpotViews(ctx, query, ownerID)
}

func (r *SpotReadStore) FindOwnerID(ctx context.Context, spotID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT owner_id FROM spots WHERE id = $1`, spotID).Scan(&ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get spot owner", err)
	}
	return ownerID, nil
}

func (r *SpotReadStore) querySpotViews(ctx context.Context, query string, args ...any) ([]*queries.SpotView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	defer rows.Close()

	var views []*queries.SpotView
	for rows.Next() {
		view, err := scanSpotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate spot rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpotView(row rowScanner) (*queries.SpotView, error) {
	var (
		view               queries.SpotView
		previewImage       pgtype.Text
		avgRating          pgtype.Numeric
		createdAt, updated pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Address, &view.City, &view.State, &view.Country,
		&view.Lat, &view.Lng, &view.Name, &view.Description, &view.PriceCents,
		&previewImage, &avgRating, &createdAt, &updated,
	)
	if err != nil {
		return nil, err
	}
	view.PreviewImage = pgconv.StringPtrFromPgtype(previewImage)
	view.AvgRating, err = pgconv.Float64PtrFromNumeric(avgRating)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &view, nil
}
