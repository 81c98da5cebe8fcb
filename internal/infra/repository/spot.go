package repository

import (
	"context"

	"stayspot/internal/domain/spot"
	"stayspot/internal/infra"
	"stayspot/internal/infra/db"
	"stayspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotRepository struct{}

func NewSpotRepository() *SpotRepository {
	return &SpotRepository{}
}

func (r *SpotRepository) Create(ctx context.Context, tx db.DBTX, s *spot.Spot) (uuid.UUID, error) {
	const query = `
		INSERT INTO spots (id, owner_id, address, city, state, country, lat, lng, name, description, price_cents, preview_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		s.ID(),
		s.OwnerID(),
		s.Addr().Street,
		s.Addr().City,
		s.Addr().State,
		s.Addr().Country,
		s.Lat(),
		s.Lng(),
		s.Name(),
		s.Description(),
		s.PriceCents(),
		pgconv.StringToPgtype(s.PreviewImageURL()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create spot", err)
	}
	return id, nil
}

func (r *SpotRepository) Update(ctx context.Context, tx db.DBTX, s *spot.Spot) error {
	const query = `
		UPDATE spots
		SET address = $2, city = $3, state = $4, country = $5,
		    lat = $6, lng = $7, name = $8, description = $9, price_cents = $10,
		    preview_image_url = $11, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		s.ID(),
		s.Addr().Street,
		s.Addr().City,
		s.Addr().State,
		s.Addr().Country,
		s.Lat(),
		s.Lng(),
		s.Name(),
		s.Description(),
		s.PriceCents(),
		pgconv.StringToPgtype(s.PreviewImageURL()),
	)
	if err != nil {
		return wrapWriteErr("failed to update spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, tx db.DBTX, spotID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM spots WHERE id = $1`, spotID)
	if err != nil {
		return wrapWriteErr("failed to delete spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}
