package response

import (
	"time"

	"stayspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	UserID    uuid.UUID `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerBookingItem is what the spot owner sees: the stay plus who booked it.
type OwnerBookingItem struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spotId"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicBookingItem is what everyone else sees: occupied dates only.
type PublicBookingItem struct {
	SpotID    uuid.UUID `json:"spotId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
}

type BookingListResponse struct {
	Bookings any `json:"Bookings"`
}

type CurrentBookingResponse struct {
	ID        uuid.UUID   `json:"id"`
	SpotID    uuid.UUID   `json:"spotId"`
	UserID    uuid.UUID   `json:"userId"`
	Spot      SpotSummary `json:"Spot"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type SpotSummary struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"priceCents"`
	PreviewImage *string   `json:"previewImage"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.StartDate = rm.StartDate.Format(time.DateOnly)
	resp.EndDate = rm.EndDate.Format(time.DateOnly)
	return &resp
}

func FromSpotBookingsView(view *queries.SpotBookingsView) *BookingListResponse {
	if view.IsOwner {
		items := make([]*OwnerBookingItem, len(view.OwnerItems))
		for i, rm := range view.OwnerItems {
			item := &OwnerBookingItem{}
			_ = copier.Copy(item, rm)
			item.StartDate = rm.StartDate.Format(time.DateOnly)
			item.EndDate = rm.EndDate.Format(time.DateOnly)
			items[i] = item
		}
		return &BookingListResponse{Bookings: items}
	}

	items := make([]*PublicBookingItem, len(view.PublicItems))
	for i, rm := range view.PublicItems {
		items[i] = &PublicBookingItem{
			SpotID:    rm.SpotID,
			StartDate: rm.StartDate.Format(time.DateOnly),
			EndDate:   rm.EndDate.Format(time.DateOnly),
		}
	}
	return &BookingListResponse{Bookings: items}
}

func FromCurrentBookingItems(rms []*queries.CurrentBookingItem) *BookingListResponse {
	items := make([]*CurrentBookingResponse, len(rms))
	for i, rm := range rms {
		item := &CurrentBookingResponse{}
		_ = copier.Copy(item, rm)
		item.StartDate = rm.StartDate.Format(time.DateOnly)
		item.EndDate = rm.EndDate.Format(time.DateOnly)
		items[i] = item
	}
	return &BookingListResponse{Bookings: items}
}
