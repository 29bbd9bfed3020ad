package booking

import (
	"strings"

	"rental-marketplace/internal/pkg/errs"
)

const MaxMessageLength = 2000

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

var (
	ErrNotFound          = errs.Sentinel("Booking not found", errs.ErrNotFound)
	ErrDatesUnavailable  = errs.Sentinel("Property is already booked for these dates", errs.ErrConflict)
	ErrInvalidStatus     = errs.Sentinel("Invalid booking status", errs.ErrValidation)
	ErrInvalidTransition = errs.Sentinel("Booking status cannot be changed", errs.ErrConflict)
	ErrInvalidDates      = errs.Sentinel("End date must be after start date", errs.ErrValidation)
	ErrMissingDates      = errs.Sentinel("Start date and end date are required", errs.ErrValidation)
	ErrInvalidAmount     = errs.Sentinel("Total amount must be positive", errs.ErrValidation)
	ErrMessageTooLong    = errs.Sentinel("Message is too long", errs.ErrValidation)
	ErrNotParticipant    = errs.Sentinel("Forbidden", errs.ErrForbidden)
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksDates reports whether a booking in this status occupies its date range.
func (s Status) BlocksDates() bool {
	return s == StatusApproved
}

func NewStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
