package repository

import (
	"context"

	"stayspot/internal/domain/review"
	"stayspot/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, spot_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rev.ID(),
		rev.SpotID(),
		rev.UserID(),
		rev.Rating().Value(),
		rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create review", err)
	}
	return id, nil
}
