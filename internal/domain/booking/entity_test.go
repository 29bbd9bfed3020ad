//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, int64(90000), actual.TotalAmount().Cents())
		assert.Equal(t, 9, actual.Dates().Nights())
		require.NotNil(t, actual.Message().Ptr())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one night", mutate: func(b *builder.BookingBuilder) { b.WithDates(date(2025, 3, 1), date(2025, 3, 2)) }},
			{name: "same day", mutate: func(b *builder.BookingBuilder) { b.WithDates(date(2025, 3, 1), date(2025, 3, 1)) }, errIs: booking.ErrInvalidDates},
			{name: "end before start", mutate: func(b *builder.BookingBuilder) { b.WithDates(date(2025, 3, 5), date(2025, 3, 1)) }, errIs: booking.ErrInvalidDates},
			{name: "missing start", mutate: func(b *builder.BookingBuilder) { b.WithDates(time.Time{}, date(2025, 3, 1)) }, errIs: booking.ErrMissingDates},
			{
				name:   "times within the same day collapse",
				mutate: func(b *builder.BookingBuilder) { b.WithDates(date(2025, 3, 1).Add(8*time.Hour), date(2025, 3, 1).Add(20*time.Hour)) },
				errIs:  booking.ErrInvalidDates,
			},
		})
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "cents", mutate: func(b *builder.BookingBuilder) { b.WithTotalAmount(0.01) }},
			{name: "zero", mutate: func(b *builder.BookingBuilder) { b.WithTotalAmount(0) }, errIs: booking.ErrInvalidAmount},
			{name: "negative", mutate: func(b *builder.BookingBuilder) { b.WithTotalAmount(-5) }, errIs: booking.ErrInvalidAmount},
		})
	})

	t.Run("message validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "no message", mutate: func(b *builder.BookingBuilder) { b.WithoutMessage() }},
			{name: "max length", mutate: func(b *builder.BookingBuilder) {
				msg := strings.Repeat("m", booking.MaxMessageLength)
				b.Message = &msg
			}},
			{name: "too long", mutate: func(b *builder.BookingBuilder) {
				msg := strings.Repeat("m", booking.MaxMessageLength+1)
				b.Message = &msg
			}, errIs: booking.ErrMessageTooLong},
		})
	})
}

func TestNewStatus(t *testing.T) {
	s, err := booking.NewStatus(" approved ")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, s)
	assert.True(t, s.BlocksDates())
	assert.False(t, booking.StatusPending.BlocksDates())

	_, err = booking.NewStatus("LOST")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to booking.Status
		want     bool
	}{
		{booking.StatusPending, booking.StatusApproved, true},
		{booking.StatusPending, booking.StatusRejected, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusPending, false},
		{booking.StatusApproved, booking.StatusCancelled, true},
		{booking.StatusApproved, booking.StatusRejected, false},
		{booking.StatusRejected, booking.StatusApproved, false},
		{booking.StatusCancelled, booking.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+" to "+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestExisting_AuthorizeTransition(t *testing.T) {
	existing := builder.NewBookingBuilder().BuildExisting()
	stranger := uuid.New()

	tests := []struct {
		name   string
		status booking.Status
		role   user.Role
		actor  uuid.UUID
		next   booking.Status
		errIs  error
	}{
		{name: "landlord approves", status: booking.StatusPending, role: user.RoleLandlord, actor: existing.LandlordID, next: booking.StatusApproved},
		{name: "landlord rejects", status: booking.StatusPending, role: user.RoleLandlord, actor: existing.LandlordID, next: booking.StatusRejected},
		{name: "admin approves", status: booking.StatusPending, role: user.RoleAdmin, actor: stranger, next: booking.StatusApproved},
		{name: "tenant cancels", status: booking.StatusPending, role: user.RoleTenant, actor: existing.TenantID, next: booking.StatusCancelled},
		{name: "tenant cancels approved", status: booking.StatusApproved, role: user.RoleTenant, actor: existing.TenantID, next: booking.StatusCancelled},
		{name: "tenant cannot approve", status: booking.StatusPending, role: user.RoleTenant, actor: existing.TenantID, next: booking.StatusApproved, errIs: booking.ErrNotParticipant},
		{name: "other landlord", status: booking.StatusPending, role: user.RoleLandlord, actor: stranger, next: booking.StatusApproved, errIs: booking.ErrNotParticipant},
		{name: "rejected is final", status: booking.StatusRejected, role: user.RoleLandlord, actor: existing.LandlordID, next: booking.StatusApproved, errIs: booking.ErrInvalidTransition},
		{name: "cancelled is final for tenant", status: booking.StatusCancelled, role: user.RoleTenant, actor: existing.TenantID, next: booking.StatusCancelled, errIs: booking.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := *existing
			e.Status = tt.status

			err := e.AuthorizeTransition(tt.role, tt.actor, tt.next)

			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
