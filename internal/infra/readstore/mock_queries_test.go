//go:build unit

package readstore

import (
	"context"

	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

type MockReviewReadQueries struct {
	mock.Mock
}

func (m *MockReviewReadQueries) GetReviewView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReviewViewRow), args.Error(1)
}

func (m *MockReviewReadQueries) ListPendingReviews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPendingReviewsRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ListPendingReviewsRow), args.Error(1)
}

func (m *MockReviewReadQueries) GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetBookingViewRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByTenant(ctx context.Context, db sqlc.DBTX, tenantID uuid.UUID) ([]sqlc.ListBookingsByTenantRow, error) {
	args := m.Called(ctx, db, tenantID)
	return args.Get(0).([]sqlc.ListBookingsByTenantRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsForAdmin(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.ListBookingsForAdminRow, error) {
	args := m.Called(ctx, db, status)
	return args.Get(0).([]sqlc.ListBookingsForAdminRow), args.Error(1)
}

func (m *MockBookingReadQueries) GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingForUpdateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetBookingForUpdateRow), args.Error(1)
}

func (m *MockBookingReadQueries) CountOverlappingApprovedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingApprovedBookingsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockPropertyReadQueries struct {
	mock.Mock
}

func (m *MockPropertyReadQueries) GetPropertyAccess(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyAccessRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetPropertyAccessRow), args.Error(1)
}

func (m *MockPropertyReadQueries) GetPropertyAccessForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyAccessForUpdateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetPropertyAccessForUpdateRow), args.Error(1)
}

func (m *MockPropertyReadQueries) GetPropertyDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyDetailRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetPropertyDetailRow), args.Error(1)
}

func (m *MockPropertyReadQueries) SearchPropertiesFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchPropertiesFirstPageParams) ([]sqlc.SearchPropertiesFirstPageRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.SearchPropertiesFirstPageRow), args.Error(1)
}

func (m *MockPropertyReadQueries) SearchPropertiesKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchPropertiesKeysetParams) ([]sqlc.SearchPropertiesKeysetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.SearchPropertiesKeysetRow), args.Error(1)
}

func (m *MockPropertyReadQueries) ListPropertyImagesByPropertyIDs(ctx context.Context, db sqlc.DBTX, propertyIds []uuid.UUID) ([]sqlc.PropertyImages, error) {
	args := m.Called(ctx, db, propertyIds)
	return args.Get(0).([]sqlc.PropertyImages), args.Error(1)
}

func (m *MockPropertyReadQueries) ListApprovedReviewsByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.ListApprovedReviewsByPropertyRow, error) {
	args := m.Called(ctx, db, propertyID)
	return args.Get(0).([]sqlc.ListApprovedReviewsByPropertyRow), args.Error(1)
}

func (m *MockPropertyReadQueries) ListPropertiesByLandlord(ctx context.Context, db sqlc.DBTX, landlordID uuid.UUID) ([]sqlc.ListPropertiesByLandlordRow, error) {
	args := m.Called(ctx, db, landlordID)
	return args.Get(0).([]sqlc.ListPropertiesByLandlordRow), args.Error(1)
}

func (m *MockPropertyReadQueries) ListPropertiesForAdmin(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPropertiesForAdminRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ListPropertiesForAdminRow), args.Error(1)
}

func (m *MockPropertyReadQueries) HasCompletedStay(ctx context.Context, db sqlc.DBTX, arg sqlc.HasCompletedStayParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyReadQueries) ReviewExistsForTenant(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewExistsForTenantParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}
