package booking

import (
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	propertyID  uuid.UUID
	tenantID    uuid.UUID
	dates       DateRange
	totalAmount money.Money
	message     Message
	status      Status
	createdAt   time.Time
}

type Request struct {
	PropertyID  uuid.UUID
	TenantID    uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount float64
	Message     *string
}

// NewBooking validates a booking request. New bookings are always PENDING.
func NewBooking(req Request, now time.Time) (*Booking, error) {
	dates, err := NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	amount, err := money.FromFloat(req.TotalAmount)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	msg, err := NewMessage(req.Message)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:          uuid.New(),
		propertyID:  req.PropertyID,
		tenantID:    req.TenantID,
		dates:       dates,
		totalAmount: amount,
		message:     msg,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) PropertyID() uuid.UUID    { return b.propertyID }
func (b *Booking) TenantID() uuid.UUID      { return b.tenantID }
func (b *Booking) Dates() DateRange         { return b.dates }
func (b *Booking) TotalAmount() money.Money { return b.totalAmount }
func (b *Booking) Message() Message         { return b.message }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }

// Existing is the command-side snapshot of a stored booking.
type Existing struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	LandlordID uuid.UUID
	TenantID   uuid.UUID
	Dates      DateRange
	Status     Status
}

// AuthorizeTransition decides whether actor may move the booking to next.
// Landlords of the property and admins may approve, reject or cancel; the tenant may only cancel.
func (e Existing) AuthorizeTransition(role user.Role, actorID uuid.UUID, next Status) error {
	manager := user.Authorize(role, user.CapBookingManageAny) || actorID == e.LandlordID
	tenant := actorID == e.TenantID
	switch {
	case manager:
	case tenant && next == StatusCancelled:
	default:
		return ErrNotParticipant
	}
	if !e.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	return nil
}
