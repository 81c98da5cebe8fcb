package response

import (
	"time"

	"stayspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Rating    int32     `json:"stars"`
	Comment   string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReviewListResponse struct {
	Reviews []*ReviewResponse `json:"Reviews"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReviewViews(rms []*queries.ReviewView) *ReviewListResponse {
	reviews := make([]*ReviewResponse, len(rms))
	for i, rm := range rms {
		reviews[i] = FromReviewView(rm)
	}
	return &ReviewListResponse{Reviews: reviews}
}
