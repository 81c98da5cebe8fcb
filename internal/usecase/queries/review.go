package queries

import (
	"context"

	"stayspot/internal/infra"
	"stayspot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindBySpot(ctx context.Context, spotID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	reviews ReviewReadStore
	spots   SpotOwnerReadStore
}

func NewReviewQueries(reviews ReviewReadStore, spots SpotOwnerReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, spots: spots}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*ReviewView, error) {
	if _, err := q.spots.FindOwnerID(ctx, spotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return q.reviews.FindBySpot(ctx, spotID)
}
