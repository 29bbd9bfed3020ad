package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/domain/user"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Properties() PropertyRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups write workflows validate against.
// Inside Tx they see the transaction's own writes and locks.
type CommandReads interface {
	PropertyAccess(ctx context.Context, id uuid.UUID) (*property.Access, error)
	PropertyAccessForUpdate(ctx context.Context, id uuid.UUID) (*property.Access, error)
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Existing, error)
	CountOverlappingApproved(ctx context.Context, propertyID uuid.UUID, dates booking.DateRange, excludeID *uuid.UUID) (int64, error)
	ReviewEligibility(ctx context.Context, propertyID, tenantID uuid.UUID, today time.Time) (review.Eligibility, error)
	ReviewForUpdate(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	UserCredentialsByEmail(ctx context.Context, email user.Email) (*UserCredentials, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type PropertyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) (uuid.UUID, error)
	SetAvailability(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, available bool) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error
	ExpirePending(ctx context.Context, tx sqlc.DBTX, today time.Time) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	Approve(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcPropertyRatingStats(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID) error
}
