package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id         uuid.UUID
	propertyID uuid.UUID
	tenantID   uuid.UUID
	rating     Rating
	text       Text
	isApproved bool
	createdAt  time.Time
}

// NewReview creates an unapproved review. Eligibility is checked separately against stored bookings.
func NewReview(propertyID, tenantID uuid.UUID, rating Rating, text Text, now time.Time) *Review {
	return &Review{
		id:         uuid.New(),
		propertyID: propertyID,
		tenantID:   tenantID,
		rating:     rating,
		text:       text,
		isApproved: false,
		createdAt:  now,
	}
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) PropertyID() uuid.UUID { return r.propertyID }
func (r *Review) TenantID() uuid.UUID   { return r.tenantID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Text() Text            { return r.text }
func (r *Review) IsApproved() bool      { return r.isApproved }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }

// Eligibility holds the stored facts a submission is judged against.
type Eligibility struct {
	HasCompletedStay bool
	AlreadyReviewed  bool
}

// Check reports the first failed precondition: a completed stay, then uniqueness.
func (e Eligibility) Check() error {
	if !e.HasCompletedStay {
		return ErrNotEligible
	}
	if e.AlreadyReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}

// Decision is the outcome of moderating a review.
type Decision int

const (
	DecisionApprove Decision = iota
	DecisionReject
)

func DecisionFromApproved(approved bool) Decision {
	if approved {
		return DecisionApprove
	}
	return DecisionReject
}
