//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bookingViewRow(status string) sqlc.GetBookingViewRow {
	created := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	return sqlc.GetBookingViewRow{
		ID:              uuid.New(),
		PropertyID:      uuid.New(),
		TenantID:        uuid.New(),
		StartDate:       pgtype.Date{Time: day(2025, 3, 1), Valid: true},
		EndDate:         pgtype.Date{Time: day(2025, 3, 5), Valid: true},
		TotalAmount:     pgtype.Numeric{Int: big.NewInt(91250), Exp: -2, Valid: true},
		Status:          status,
		CreatedAt:       pgtype.Timestamptz{Time: created, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: created, Valid: true},
		PropertyTitle:   "Sunny loft",
		PropertyCity:    "Berlin",
		PropertyAddress: "Main St 1",
		LandlordID:      uuid.New(),
		LandlordName:    "Owner",
		LandlordEmail:   "owner@example.com",
		TenantName:      "Tenant",
		TenantEmail:     "tenant@example.com",
		PrimaryImageUrl: pgtype.Text{String: "https://img.example.com/1.jpg", Valid: true},
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	t.Run("maps the joined row", func(t *testing.T) {
		row := bookingViewRow("PENDING")
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBookingView", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, 912.5, view.TotalAmount)
		assert.Equal(t, day(2025, 3, 1), view.StartDate)
		assert.Equal(t, day(2025, 3, 5), view.EndDate)
		assert.Nil(t, view.Message)
		assert.Equal(t, "PENDING", view.Status)
		assert.Equal(t, row.LandlordID, view.Property.Landlord.ID)
		require.NotNil(t, view.Property.PrimaryImage)
		assert.Equal(t, "https://img.example.com/1.jpg", *view.Property.PrimaryImage)
		assert.Equal(t, "tenant@example.com", view.Tenant.Email)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBookingView", mock.Anything, mock.Anything, id).Return(sqlc.GetBookingViewRow{}, pgx.ErrNoRows)

		_, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingReadStore_ListAll(t *testing.T) {
	approved := booking.StatusApproved

	tests := []struct {
		name      string
		status    *booking.Status
		wantParam pgtype.Text
	}{
		{name: "no filter", status: nil, wantParam: pgtype.Text{}},
		{name: "status filter", status: &approved, wantParam: pgtype.Text{String: "APPROVED", Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []sqlc.ListBookingsForAdminRow{sqlc.ListBookingsForAdminRow(bookingViewRow("APPROVED"))}
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("ListBookingsForAdmin", mock.Anything, mock.Anything, tt.wantParam).Return(rows, nil)

			views, err := NewBookingReadStore(mockQueries, nil).ListAll(context.Background(), tt.status)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, rows[0].ID, views[0].ID)
			mockQueries.AssertExpectations(t)
		})
	}

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookingsForAdmin", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListBookingsForAdminRow(nil), assert.AnError)

		_, err := NewBookingReadStore(mockQueries, nil).ListAll(context.Background(), nil)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_ListByTenant(t *testing.T) {
	tenantID := uuid.New()
	rows := []sqlc.ListBookingsByTenantRow{
		sqlc.ListBookingsByTenantRow(bookingViewRow("PENDING")),
		sqlc.ListBookingsByTenantRow(bookingViewRow("CANCELLED")),
	}
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookingsByTenant", mock.Anything, mock.Anything, tenantID).Return(rows, nil)

	views, err := NewBookingReadStore(mockQueries, nil).ListByTenant(context.Background(), tenantID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "CANCELLED", views[1].Status)
}

func TestBookingReadStore_FindForUpdate(t *testing.T) {
	t.Run("builds the snapshot", func(t *testing.T) {
		row := sqlc.GetBookingForUpdateRow{
			ID:         uuid.New(),
			PropertyID: uuid.New(),
			TenantID:   uuid.New(),
			StartDate:  pgtype.Date{Time: day(2025, 3, 1), Valid: true},
			EndDate:    pgtype.Date{Time: day(2025, 3, 5), Valid: true},
			Status:     "APPROVED",
			LandlordID: uuid.New(),
		}
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		existing, err := NewBookingReadStore(mockQueries, nil).FindForUpdate(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.LandlordID, existing.LandlordID)
		assert.Equal(t, booking.StatusApproved, existing.Status)
		assert.Equal(t, day(2025, 3, 1), existing.Dates.Start())
		assert.Equal(t, day(2025, 3, 5), existing.Dates.End())
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.GetBookingForUpdateRow{}, pgx.ErrNoRows)

		_, err := NewBookingReadStore(mockQueries, nil).FindForUpdate(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingReadStore_CountOverlappingApproved(t *testing.T) {
	propertyID := uuid.New()
	dates, err := booking.NewDateRange(day(2025, 3, 1), day(2025, 3, 5))
	require.NoError(t, err)
	excluded := uuid.New()

	tests := []struct {
		name        string
		excludeID   *uuid.UUID
		wantExclude pgtype.UUID
	}{
		{name: "new booking", excludeID: nil, wantExclude: pgtype.UUID{}},
		{name: "existing booking excluded", excludeID: &excluded, wantExclude: pgtype.UUID{Bytes: excluded, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := sqlc.CountOverlappingApprovedBookingsParams{
				PropertyID: propertyID,
				StartDate:  pgtype.Date{Time: day(2025, 3, 1), Valid: true},
				EndDate:    pgtype.Date{Time: day(2025, 3, 5), Valid: true},
				ExcludeID:  tt.wantExclude,
			}
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("CountOverlappingApprovedBookings", mock.Anything, mock.Anything, want).Return(int64(2), nil)

			n, err := NewBookingReadStore(mockQueries, nil).CountOverlappingApproved(context.Background(), propertyID, dates, tt.excludeID)

			require.NoError(t, err)
			assert.Equal(t, int64(2), n)
			mockQueries.AssertExpectations(t)
		})
	}
}
