package readstore

import (
	"context"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByTenant(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) ([]sqlc.ListBookingsByTenantRow, error)
	ListBookingsForAdmin(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListBookingsForAdminRow, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingForUpdateRow, error)
	CountOverlappingApprovedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingApprovedBookingsParams) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByTenant(ctx, r.db, tenantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tenant bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(sqlc.GetBookingViewRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) ListAll(ctx context.Context, status *booking.Status) ([]*queries.BookingView, error) {
	var statusParam pgtype.Text
	if status != nil {
		statusParam = pgconv.StringToPgtype(status.String())
	}
	rows, err := r.queries.ListBookingsForAdmin(ctx, r.db, statusParam)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(sqlc.GetBookingViewRow(row))
	}
	return result, nil
}

// FindForUpdate locks the booking row until the surrounding transaction ends.
func (r *BookingReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Existing, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	dates, err := booking.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid dates", err)
	}
	return &booking.Existing{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		LandlordID: row.LandlordID,
		TenantID:   row.TenantID,
		Dates:      dates,
		Status:     booking.Status(row.Status),
	}, nil
}

func (r *BookingReadStore) CountOverlappingApproved(ctx context.Context, propertyID uuid.UUID, dates booking.DateRange, excludeID *uuid.UUID) (int64, error) {
	n, err := r.queries.CountOverlappingApprovedBookings(ctx, r.db, sqlc.CountOverlappingApprovedBookingsParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(dates.Start()),
		EndDate:    pgconv.DateToPgtype(dates.End()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return n, nil
}

func toBookingView(row sqlc.GetBookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		PropertyID:  row.PropertyID,
		TenantID:    row.TenantID,
		StartDate:   pgconv.DateFromPgtype(row.StartDate),
		EndDate:     pgconv.DateFromPgtype(row.EndDate),
		TotalAmount: pgconv.Float64FromNumeric(row.TotalAmount),
		Message:     pgconv.StringPtrFromPgtype(row.Message),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		Property: queries.BookingProperty{
			ID:           row.PropertyID,
			Title:        row.PropertyTitle,
			City:         row.PropertyCity,
			Address:      row.PropertyAddress,
			PrimaryImage: pgconv.StringPtrFromPgtype(row.PrimaryImageUrl),
			Landlord: queries.Contact{
				ID:    row.LandlordID,
				Name:  row.LandlordName,
				Email: row.LandlordEmail,
			},
		},
		Tenant: queries.Contact{
			ID:    row.TenantID,
			Name:  row.TenantName,
			Email: row.TenantEmail,
		},
	}
}
