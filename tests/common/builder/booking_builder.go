//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stayspot/internal/handler/dto/request"
	"stayspot/internal/usecase/queries"
	"stayspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var previewImageURL = "https://images.example.com/test-spot.jpg"

type BookingBuilder struct {
	SpotID    uuid.UUID
	UserID    uuid.UUID
	UserEmail string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		SpotID:    uuid.New(),
		UserID:    uuid.New(),
		UserEmail: "guest@example.com",
		StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) WithSpotID(id uuid.UUID) *BookingBuilder {
	b.SpotID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

// Build methods
func (b *BookingBuilder) BuildDatesRequestDTO() reqdto.BookingDatesRequest {
	return reqdto.BookingDatesRequest{
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildOwnerItem() *queries.BookingWithUserItem {
	return &queries.BookingWithUserItem{
		ID:        uuid.New(),
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		UserEmail: b.UserEmail,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildPublicItem() *queries.BookingPublicItem {
	return &queries.BookingPublicItem{
		SpotID:    b.SpotID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (b *BookingBuilder) BuildCurrentItem() *queries.CurrentBookingItem {
	return &queries.CurrentBookingItem{
		ID:        uuid.New(),
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Spot: queries.SpotSummary{
			ID:           b.SpotID,
			OwnerID:      uuid.New(),
			Address:      "123 Main St",
			City:         "Portland",
			State:        "OR",
			Country:      "USA",
			Lat:          45.52,
			Lng:          -122.68,
			Name:         "Test Spot",
			PriceCents:   12500,
			PreviewImage: &previewImageURL,
		},
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:        uuid.New(),
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
