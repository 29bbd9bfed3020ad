package repository

import (
	"context"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (sqlc.Bookings, error)
	ExpirePendingBookings(ctx context.Context, db sqlc.DBTX, today pgtype.Date) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	row, err := r.queries.CreateBooking(ctx, tx, sqlc.CreateBookingParams{
		ID:          b.ID(),
		PropertyID:  b.PropertyID(),
		TenantID:    b.TenantID(),
		StartDate:   pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:     pgconv.DateToPgtype(b.Dates().End()),
		TotalAmount: pgconv.CentsToNumeric(b.TotalAmount().Cents()),
		Message:     pgconv.StringPtrToPgtype(b.Message().Ptr()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error {
	_, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

// ExpirePending cancels PENDING bookings whose stay should already have started.
func (r *BookingRepository) ExpirePending(ctx context.Context, tx sqlc.DBTX, today time.Time) (int64, error) {
	n, err := r.queries.ExpirePendingBookings(ctx, tx, pgconv.DateToPgtype(today))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending bookings", err)
	}
	return n, nil
}
