package review

import "rental-marketplace/internal/pkg/errs"

var (
	ErrRatingTooLow    = errs.Sentinel("Rating must be at least 1", errs.ErrValidation)
	ErrRatingTooHigh   = errs.Sentinel("Rating must be at most 5", errs.ErrValidation)
	ErrTextTooLong     = errs.Sentinel("Review text must be at most 1000 characters", errs.ErrValidation)
	ErrNotFound        = errs.Sentinel("Review not found", errs.ErrNotFound)
	ErrNotEligible     = errs.Sentinel("You can only review properties you have rented", errs.ErrValidation)
	ErrAlreadyReviewed = errs.Sentinel("You have already reviewed this property", errs.ErrConflict)
)
