package response

import (
	"time"

	"stayspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	PreviewImage *string   `json:"previewImage"`
	AvgRating    *float64  `json:"avgRating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SpotListResponse struct {
	Spots      []*SpotResponse `json:"Spots"`
	NextCursor string          `json:"nextCursor,omitempty"`
}

func FromSpotView(rm *queries.SpotView) *SpotResponse {
	var resp SpotResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSpotViews(rms []*queries.SpotView, next *queries.Cursor) *SpotListResponse {
	spots := make([]*SpotResponse, len(rms))
	for i, rm := range rms {
		spots[i] = FromSpotView(rm)
	}
	resp := &SpotListResponse{Spots: spots}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
