package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID  uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount float64
	Message     *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, tenant Actor) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string, actor Actor) error
	ExpireStalePending(ctx context.Context) (int64, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// CreateBooking admits a PENDING booking when the property is bookable and no APPROVED booking overlaps.
// The overlap check and the insert share one transaction.
func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, tenant Actor) (uuid.UUID, error) {
	b, err := booking.NewBooking(booking.Request{
		PropertyID:  req.PropertyID,
		TenantID:    tenant.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalAmount: req.TotalAmount,
		Message:     req.Message,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		access, derr := tx.Reads().PropertyAccess(ctx, b.PropertyID())
		if derr != nil {
			return translate(derr, infra.KindNotFound, property.ErrNotFound)
		}
		if derr = access.EnsureBookable(); derr != nil {
			return derr
		}

		overlapping, derr := tx.Reads().CountOverlappingApproved(ctx, b.PropertyID(), b.Dates(), nil)
		if derr != nil {
			return derr
		}
		if overlapping > 0 {
			return booking.ErrDatesUnavailable
		}

		id, derr = tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return translate(derr, infra.KindForeignKeyViolated, property.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateStatus applies a status transition. Approval re-validates the property and the
// approved calendar under row locks; the exclusion constraint catches anything that slips past.
func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string, actor Actor) error {
	next, err := booking.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().BookingForUpdate(ctx, bookingID)
		if derr != nil {
			return translate(derr, infra.KindNotFound, booking.ErrNotFound)
		}
		if derr = existing.AuthorizeTransition(actor.Role, actor.ID, next); derr != nil {
			return derr
		}

		if next.BlocksDates() {
			access, derr := tx.Reads().PropertyAccessForUpdate(ctx, existing.PropertyID)
			if derr != nil {
				return translate(derr, infra.KindNotFound, property.ErrNotFound)
			}
			if derr = access.EnsureBookable(); derr != nil {
				return derr
			}
			overlapping, derr := tx.Reads().CountOverlappingApproved(ctx, existing.PropertyID, existing.Dates, &existing.ID)
			if derr != nil {
				return derr
			}
			if overlapping > 0 {
				return booking.ErrDatesUnavailable
			}
		}

		derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), existing.ID, next)
		if derr != nil {
			return translate(derr, infra.KindExclusionViolated, booking.ErrDatesUnavailable)
		}
		return nil
	})
}

// ExpireStalePending cancels PENDING bookings whose start date has already passed.
func (uc *bookingCommandsImpl) ExpireStalePending(ctx context.Context) (int64, error) {
	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Bookings().ExpirePending(ctx, tx.DB(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}
