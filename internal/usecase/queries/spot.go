package queries

import (
	"context"
	"time"

	"stayspot/internal/infra"

	"github.com/google/uuid"
)

type SpotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*SpotView, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SpotView, error)
}

type SpotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpotView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*SpotView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SpotView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SpotView, error)
}

type spotQueriesImpl struct {
	repo SpotReadStore
}

func NewSpotQueries(repo SpotReadStore) SpotQueries {
	return &spotQueriesImpl{repo: repo}
}

func (q *spotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpotView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *spotQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*SpotView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*SpotView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.FindKeyset(ctx, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}

func (q *spotQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*SpotView, error) {
	return q.repo.FindByOwner(ctx, ownerID)
}
