//go:build unit

package repository

import (
	"context"

	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

// mockDBTX is only passed through; the queries mocks never touch it.
type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

type MockReviewWriteQueries struct {
	mock.Mock
}

func (m *MockReviewWriteQueries) CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

func (m *MockReviewWriteQueries) ApproveReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reviews), args.Error(1)
}

func (m *MockReviewWriteQueries) DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockRatingStatsQueries struct {
	mock.Mock
}

func (m *MockRatingStatsQueries) UpsertPropertyRatingStats(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) error {
	args := m.Called(ctx, db, propertyID)
	return args.Error(0)
}

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) ExpirePendingBookings(ctx context.Context, db sqlc.DBTX, today pgtype.Date) (int64, error) {
	args := m.Called(ctx, db, today)
	return args.Get(0).(int64), args.Error(1)
}

type MockPropertyWriteQueries struct {
	mock.Mock
}

func (m *MockPropertyWriteQueries) CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) (sqlc.Properties, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Properties), args.Error(1)
}

func (m *MockPropertyWriteQueries) CreatePropertyImage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyImageParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockPropertyWriteQueries) SetPropertyAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPropertyAvailabilityParams) (sqlc.Properties, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Properties), args.Error(1)
}

func (m *MockPropertyWriteQueries) DeleteProperty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}
