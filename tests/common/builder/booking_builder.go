//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/booking"
	reqdto "rental-marketplace/internal/handler/dto/request"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	LandlordID  uuid.UUID
	TenantID    uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount float64
	Message     *string
	Status      booking.Status
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	msg := "Looking forward to the stay"
	return &BookingBuilder{
		ID:          uuid.New(),
		PropertyID:  uuid.New(),
		LandlordID:  uuid.New(),
		TenantID:    uuid.New(),
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount: 900,
		Message:     &msg,
		Status:      booking.StatusPending,
		CreatedAt:   time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildRequest() booking.Request {
	return booking.Request{
		PropertyID:  b.PropertyID,
		TenantID:    b.TenantID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalAmount: b.TotalAmount,
		Message:     b.Message,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.BuildRequest(), b.CreatedAt)
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		PropertyID:  b.PropertyID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalAmount: b.TotalAmount,
		Message:     b.Message,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID:  b.PropertyID.String(),
		StartDate:   &reqdto.Date{Time: b.StartDate},
		EndDate:     &reqdto.Date{Time: b.EndDate},
		TotalAmount: b.TotalAmount,
		Message:     b.Message,
	}
}

// BuildExisting panics on invalid dates; use it only with a valid range.
func (b *BookingBuilder) BuildExisting() *booking.Existing {
	dates, err := booking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return &booking.Existing{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		LandlordID: b.LandlordID,
		TenantID:   b.TenantID,
		Dates:      dates,
		Status:     b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		PropertyID:  b.PropertyID,
		TenantID:    b.TenantID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalAmount: b.TotalAmount,
		Message:     b.Message,
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
		Property: queries.BookingProperty{
			ID:       b.PropertyID,
			Title:    "Sunny loft",
			City:     "Springfield",
			Address:  "1 Main St",
			Landlord: queries.Contact{ID: b.LandlordID, Name: "Test Landlord", Email: "landlord@example.com"},
		},
		Tenant: queries.Contact{ID: b.TenantID, Name: "Test Tenant", Email: "test@example.com"},
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithTenantID(id uuid.UUID) *BookingBuilder {
	b.TenantID = id
	return b
}

func (b *BookingBuilder) WithLandlordID(id uuid.UUID) *BookingBuilder {
	b.LandlordID = id
	return b
}

func (b *BookingBuilder) WithPropertyID(id uuid.UUID) *BookingBuilder {
	b.PropertyID = id
	return b
}

func (b *BookingBuilder) WithTotalAmount(v float64) *BookingBuilder {
	b.TotalAmount = v
	return b
}

func (b *BookingBuilder) WithoutMessage() *BookingBuilder {
	b.Message = nil
	return b
}
