package commands

import (
	"context"

	domreview "stayspot/internal/domain/review"
	"stayspot/internal/infra"
	"stayspot/internal/pkg/errs"
	"stayspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateReview = errs.New("user already has a review for this spot")

type CreateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, spotID uuid.UUID, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReviewCommands(uow shared.UnitOfWork) ReviewCommands {
	return &reviewCommandsImpl{uow: uow}
}

// CreateReview posts a review for a spot; one review per user per spot.
func (uc *reviewCommandsImpl) CreateReview(
	ctx context.Context,
	spotID uuid.UUID,
	req CreateReviewRequest,
	userID uuid.UUID,
) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SpotByID(ctx, spotID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}

		exists, derr := tx.Reads().ReviewExists(ctx, spotID, userID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateReview
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), domreview.NewReview(spotID, userID, rating, comment))
		if derr != nil {
			// Unique (spot_id, user_id) backs up the existence check.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}
