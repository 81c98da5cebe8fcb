package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating  = errors.New("stars must be an integer from 1 to 5")
	ErrEmptyComment   = errors.New("review text is required")
	ErrCommentTooLong = errors.New("review text is too long")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(trimmed) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: trimmed}, nil
}

func (c Comment) String() string {
	return c.value
}

type Review struct {
	id        uuid.UUID
	spotID    uuid.UUID
	userID    uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(spotID, userID uuid.UUID, rating Rating, comment Comment) *Review {
	return &Review{
		id:      uuid.New(),
		spotID:  spotID,
		userID:  userID,
		rating:  rating,
		comment: comment,
	}
}

func ReconstructReview(
	id, spotID, userID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:        id,
		spotID:    spotID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) SpotID() uuid.UUID    { return r.spotID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
