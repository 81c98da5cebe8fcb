package readstore

import (
	"context"

	"stayspot/internal/infra"
	"stayspot/internal/infra/db"
	"stayspot/internal/pkg/pgconv"
	"stayspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewColumns = `
	r.id, r.spot_id, r.user_id, u.email, r.rating, r.comment, r.created_at, r.updated_at`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewViewColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	view, err := scanReviewView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return view, nil
}

func (r *ReviewReadStore) FindBySpot(ctx context.Context, spotID uuid.UUID) ([]*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewViewColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.spot_id = $1
		ORDER BY r.created_at DESC, r.id DESC`

	rows, err := r.db.Query(ctx, query, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return views, nil
}

func scanReviewView(row rowScanner) (*queries.ReviewView, error) {
	var (
		view               queries.ReviewView
		createdAt, updated pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.SpotID, &view.UserID, &view.UserEmail,
		&view.Rating, &view.Comment, &createdAt, &updated,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &view, nil
}
