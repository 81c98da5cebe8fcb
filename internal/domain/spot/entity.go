package spot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyAddress = errors.New("address is required")
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidPrice = errors.New("price must be greater than zero")
	ErrInvalidLat   = errors.New("latitude must be between -90 and 90")
	ErrInvalidLng   = errors.New("longitude must be between -180 and 180")
)

type Spot struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	address         Address
	lat             float64
	lng             float64
	name            string
	description     string
	priceCents      int64
	previewImageURL string
	createdAt       time.Time
	updatedAt       time.Time
}

type Address struct {
	Street  string
	City    string
	State   string
	Country string
}

func NewSpot(ownerID uuid.UUID, addr Address, lat, lng float64, name, description string, priceCents int64, previewImageURL string) (*Spot, error) {
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.Country == "" {
		return nil, ErrEmptyAddress
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if lat < -90 || lat > 90 {
		return nil, ErrInvalidLat
	}
	if lng < -180 || lng > 180 {
		return nil, ErrInvalidLng
	}

	return &Spot{
		id:              uuid.New(),
		ownerID:         ownerID,
		address:         addr,
		lat:             lat,
		lng:             lng,
		name:            name,
		description:     description,
		priceCents:      priceCents,
		previewImageURL: previewImageURL,
	}, nil
}

func ReconstructSpot(
	id, ownerID uuid.UUID,
	addr Address,
	lat, lng float64,
	name, description string,
	priceCents int64,
	previewImageURL string,
	createdAt, updatedAt time.Time,
) *Spot {
	return &Spot{
		id:              id,
		ownerID:         ownerID,
		address:         addr,
		lat:             lat,
		lng:             lng,
		name:            name,
		description:     description,
		priceCents:      priceCents,
		previewImageURL: previewImageURL,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Spot) ID() uuid.UUID        { return s.id }
func (s *Spot) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Spot) Addr() Address        { return s.address }
func (s *Spot) Lat() float64         { return s.lat }
func (s *Spot) Lng() float64         { return s.lng }
func (s *Spot) Name() string         { return s.name }
func (s *Spot) Description() string  { return s.description }
func (s *Spot) PriceCents() int64    { return s.priceCents }

// PreviewImageURL is empty when the listing has no image yet.
func (s *Spot) PreviewImageURL() string { return s.previewImageURL }
func (s *Spot) CreatedAt() time.Time { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time { return s.updatedAt }
