package queries

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review.go -package=queriesmock

import (
	"context"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListPending(ctx context.Context) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListPending(ctx context.Context) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListPending(ctx context.Context) ([]*ReviewView, error) {
	return q.store.ListPending(ctx)
}
