package property

import "rental-marketplace/internal/pkg/errs"

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxImages            = 20
	PlaceholderImageURL  = "/placeholder.svg?height=400&width=600"
)

var (
	ErrNotFound       = errs.Sentinel("Property not found", errs.ErrNotFound)
	ErrNotAvailable   = errs.Sentinel("Property is not available", errs.ErrConflict)
	ErrNotOwner       = errs.Sentinel("Forbidden", errs.ErrForbidden)
	ErrInvalidTitle   = errs.Sentinel("Title is required", errs.ErrValidation)
	ErrInvalidDesc    = errs.Sentinel("Description is required", errs.ErrValidation)
	ErrInvalidAddress = errs.Sentinel("Address, city and postal code are required", errs.ErrValidation)
	ErrInvalidRent    = errs.Sentinel("Rent must be positive", errs.ErrValidation)
	ErrInvalidRooms   = errs.Sentinel("Bedrooms and bathrooms must be positive", errs.ErrValidation)
	ErrInvalidDate    = errs.Sentinel("Available from date is required", errs.ErrValidation)
	ErrTooManyImages  = errs.Sentinel("Too many images", errs.ErrValidation)
	ErrInvalidImage   = errs.Sentinel("Image URL must not be empty", errs.ErrValidation)
)
