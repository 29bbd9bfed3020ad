package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context, status *booking.Status) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, tenantID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context, status string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, tenantID uuid.UUID) ([]*BookingView, error) {
	return q.store.ListByTenant(ctx, tenantID)
}

// ListAll filters by status when one is given.
func (q *bookingQueriesImpl) ListAll(ctx context.Context, status string) ([]*BookingView, error) {
	if status == "" {
		return q.store.ListAll(ctx, nil)
	}
	s, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}
	return q.store.ListAll(ctx, &s)
}
