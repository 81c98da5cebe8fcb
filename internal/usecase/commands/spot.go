package commands

import (
	"context"

	domspot "stayspot/internal/domain/spot"
	"stayspot/internal/infra"
	"stayspot/internal/pkg/errs"
	"stayspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSpotNotOwned = errs.New("spot not owned by user")

type CreateSpotRequest struct {
	Address      string
	City         string
	State        string
	Country      string
	Lat          float64
	Lng          float64
	Name         string
	Description  string
	PriceCents   int64
	PreviewImage string
}

type UpdateSpotRequest = CreateSpotRequest

type CreateSpotResult struct {
	SpotID uuid.UUID
}

type SpotCommands interface {
	CreateSpot(ctx context.Context, req CreateSpotRequest, ownerID uuid.UUID) (*CreateSpotResult, error)
	UpdateSpot(ctx context.Context, spotID uuid.UUID, req UpdateSpotRequest, actorID uuid.UUID) error
	DeleteSpot(ctx context.Context, spotID uuid.UUID, actorID uuid.UUID) error
}

type spotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSpotCommands(uow shared.UnitOfWork) SpotCommands {
	return &spotCommandsImpl{uow: uow}
}

func (uc *spotCommandsImpl) CreateSpot(ctx context.Context, req CreateSpotRequest, ownerID uuid.UUID) (*CreateSpotResult, error) {
	s, err := domspot.NewSpot(
		ownerID,
		domspot.Address{Street: req.Address, City: req.City, State: req.State, Country: req.Country},
		req.Lat, req.Lng,
		req.Name, req.Description,
		req.PriceCents,
		req.PreviewImage,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Spots().Create(ctx, tx.DB(), s)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSpotResult{SpotID: createdID}, nil
}

func (uc *spotCommandsImpl) UpdateSpot(ctx context.Context, spotID uuid.UUID, req UpdateSpotRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SpotByID(ctx, spotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrSpotNotOwned
		}

		s, derr := domspot.NewSpot(
			snap.OwnerID,
			domspot.Address{Street: req.Address, City: req.City, State: req.State, Country: req.Country},
			req.Lat, req.Lng,
			req.Name, req.Description,
			req.PriceCents,
			req.PreviewImage,
		)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		return tx.Spots().Update(ctx, tx.DB(), domspot.ReconstructSpot(
			snap.ID, snap.OwnerID, s.Addr(), s.Lat(), s.Lng(), s.Name(), s.Description(), s.PriceCents(),
			s.PreviewImageURL(), s.CreatedAt(), s.UpdatedAt(),
		))
	})
}

// DeleteSpot removes the spot and, through the schema's cascade rules, every
// booking and review attached to it.
func (uc *spotCommandsImpl) DeleteSpot(ctx context.Context, spotID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SpotByID(ctx, spotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpotNotFound
			}
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrSpotNotOwned
		}
		return tx.Spots().Delete(ctx, tx.DB(), spotID)
	})
}
