package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spot_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingWithUserItem is the owner-facing list entry: the booker's identity
// is included.
type BookingWithUserItem struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spot_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingPublicItem is the non-owner list entry: dates only, no booker
// identity.
type BookingPublicItem struct {
	SpotID    uuid.UUID `json:"spot_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// SpotBookingsView is the result of listing a spot's bookings; exactly one
// of the item slices is populated depending on whether the requester owns
// the spot.
type SpotBookingsView struct {
	IsOwner     bool
	OwnerItems  []*BookingWithUserItem
	PublicItems []*BookingPublicItem
}

// CurrentBookingItem is a booking of the requesting user joined with a
// summary of the spot it reserves.
type CurrentBookingItem struct {
	ID        uuid.UUID   `json:"id"`
	SpotID    uuid.UUID   `json:"spot_id"`
	UserID    uuid.UUID   `json:"user_id"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Spot      SpotSummary `json:"spot"`
}

type SpotSummary struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	PreviewImage *string   `json:"preview_image"`
}

type SpotView struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	PreviewImage *string   `json:"preview_image"`
	AvgRating    *float64  `json:"avg_rating,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spot_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
