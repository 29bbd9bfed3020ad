//go:build unit

package repository

import (
	"context"
	"math/big"
	"testing"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	b, err := builder.NewBookingBuilder().WithTotalAmount(912.5).BuildDomain()
	require.NoError(t, err)

	t.Run("maps dates and amount to insert params", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
			return p.ID == b.ID() &&
				p.StartDate == pgtype.Date{Time: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true} &&
				p.EndDate == pgtype.Date{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true} &&
				p.TotalAmount.Int.Cmp(big.NewInt(91250)) == 0 && p.TotalAmount.Exp == -2 &&
				p.Message.Valid
		})).Return(sqlc.Bookings{ID: b.ID()}, nil)

		repo := NewBookingRepository(mockQueries)
		id, err := repo.Create(context.Background(), mockDBTX{}, b)

		require.NoError(t, err)
		assert.Equal(t, b.ID(), id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("exclusion constraint surfaces as its own kind", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})

		repo := NewBookingRepository(mockQueries)
		_, err := repo.Create(context.Background(), mockDBTX{}, b)

		assert.True(t, infra.IsKind(err, infra.KindExclusionViolated))
	})

	t.Run("unknown property is a foreign key violation", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23503", ConstraintName: "bookings_property_id_fkey"})

		repo := NewBookingRepository(mockQueries)
		_, err := repo.Create(context.Background(), mockDBTX{}, b)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	bookingID := uuid.New()

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "overlap on approval", mockErr: &pgconn.PgError{Code: "23P01"}, wantKind: infra.KindExclusionViolated},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("UpdateBookingStatus", mock.Anything, mock.Anything, sqlc.UpdateBookingStatusParams{
				ID:     bookingID,
				Status: "APPROVED",
			}).Return(sqlc.Bookings{ID: bookingID}, tt.mockErr)

			repo := NewBookingRepository(mockQueries)
			err := repo.UpdateStatus(context.Background(), mockDBTX{}, bookingID, booking.StatusApproved)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_ExpirePending(t *testing.T) {
	today := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	wantDate := pgtype.Date{Time: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), Valid: true}

	t.Run("passes the calendar date", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("ExpirePendingBookings", mock.Anything, mock.Anything, wantDate).Return(int64(3), nil)

		repo := NewBookingRepository(mockQueries)
		n, err := repo.ExpirePending(context.Background(), mockDBTX{}, today)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("ExpirePendingBookings", mock.Anything, mock.Anything, wantDate).Return(int64(0), assert.AnError)

		repo := NewBookingRepository(mockQueries)
		_, err := repo.ExpirePending(context.Background(), mockDBTX{}, today)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
