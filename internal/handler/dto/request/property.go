package request

import (
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/usecase/queries"
)

type CreatePropertyRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Description   string   `json:"description" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	PostalCode    string   `json:"postalCode" binding:"required"`
	Rent          float64  `json:"rent" binding:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms" binding:"required,min=1"`
	Bathrooms     int      `json:"bathrooms" binding:"required,min=1"`
	AvailableFrom *Date    `json:"availableFrom" binding:"required"`
	Images        []string `json:"images" binding:"omitempty,max=20,dive,required"`
}

// ToDomain leaves LandlordID unset; the command fills it from the caller.
func (r CreatePropertyRequest) ToDomain() property.NewPropertyInput {
	return property.NewPropertyInput{
		Title:         r.Title,
		Description:   r.Description,
		Street:        r.Address,
		City:          r.City,
		PostalCode:    r.PostalCode,
		Rent:          r.Rent,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		AvailableFrom: r.AvailableFrom.value(),
		ImageURLs:     r.Images,
	}
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

type SearchPropertiesQuery struct {
	City      *string  `form:"city"`
	MinRent   *float64 `form:"minRent" binding:"omitempty,gte=0"`
	MaxRent   *float64 `form:"maxRent" binding:"omitempty,gte=0"`
	Bedrooms  *int     `form:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms *int     `form:"bathrooms" binding:"omitempty,gte=0"`
	Limit     *int     `form:"limit" binding:"omitempty,min=1"`
	After     string   `form:"after"`
}

func (q SearchPropertiesQuery) Filters() queries.PropertyFilters {
	city := q.City
	if city != nil && *city == "" {
		city = nil
	}
	return queries.PropertyFilters{
		City:      city,
		MinRent:   q.MinRent,
		MaxRent:   q.MaxRent,
		Bedrooms:  q.Bedrooms,
		Bathrooms: q.Bathrooms,
	}
}

func (q SearchPropertiesQuery) Page() (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if q.Limit != nil {
		limit = queries.ValidateLimit(*q.Limit)
	}
	if q.After == "" {
		return nil, limit
	}
	return &queries.Cursor{After: q.After}, limit
}
