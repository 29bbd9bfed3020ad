//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/property"
	reqdto "rental-marketplace/internal/handler/dto/request"
	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID            uuid.UUID
	LandlordID    uuid.UUID
	Title         string
	Description   string
	Street        string
	City          string
	PostalCode    string
	Rent          float64
	Bedrooms      int
	Bathrooms     int
	AvailableFrom time.Time
	IsAvailable   bool
	ImageURLs     []string
	CreatedAt     time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:            uuid.New(),
		LandlordID:    uuid.New(),
		Title:         "Sunny loft",
		Description:   "Bright two bedroom loft near the river",
		Street:        "1 Main St",
		City:          "Springfield",
		PostalCode:    "12345",
		Rent:          1200,
		Bedrooms:      2,
		Bathrooms:     1,
		AvailableFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsAvailable:   true,
		ImageURLs:     []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
		CreatedAt:     time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PropertyBuilder) BuildInput() property.NewPropertyInput {
	return property.NewPropertyInput{
		LandlordID:    p.LandlordID,
		Title:         p.Title,
		Description:   p.Description,
		Street:        p.Street,
		City:          p.City,
		PostalCode:    p.PostalCode,
		Rent:          p.Rent,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		AvailableFrom: p.AvailableFrom,
		ImageURLs:     p.ImageURLs,
	}
}

func (p *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(p.BuildInput(), p.CreatedAt)
}

func (p *PropertyBuilder) BuildAccess() *property.Access {
	return &property.Access{ID: p.ID, LandlordID: p.LandlordID, IsAvailable: p.IsAvailable}
}

func (p *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		Title:         p.Title,
		Description:   p.Description,
		Address:       p.Street,
		City:          p.City,
		PostalCode:    p.PostalCode,
		Rent:          p.Rent,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		AvailableFrom: &reqdto.Date{Time: p.AvailableFrom},
		Images:        p.ImageURLs,
	}
}

func (p *PropertyBuilder) BuildListItem() *queries.PropertyListItem {
	images := make([]queries.ImageView, 0, len(p.ImageURLs))
	for i, u := range p.ImageURLs {
		images = append(images, queries.ImageView{URL: u, IsPrimary: i == 0})
	}
	return &queries.PropertyListItem{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Address:       p.Street,
		City:          p.City,
		PostalCode:    p.PostalCode,
		Rent:          p.Rent,
		Bedrooms:      int32(p.Bedrooms),  // #nosec G115 -- test data
		Bathrooms:     int32(p.Bathrooms), // #nosec G115 -- test data
		AvailableFrom: p.AvailableFrom,
		IsAvailable:   p.IsAvailable,
		CreatedAt:     p.CreatedAt,
		Images:        images,
		Landlord:      queries.Contact{ID: p.LandlordID, Name: "Test Landlord", Email: "landlord@example.com"},
	}
}

func (p *PropertyBuilder) BuildDetail() *queries.PropertyDetail {
	return &queries.PropertyDetail{
		PropertyListItem: *p.BuildListItem(),
		Reviews:          []queries.PropertyReview{},
	}
}

// Fluent builder methods
func (p *PropertyBuilder) WithID(id uuid.UUID) *PropertyBuilder {
	p.ID = id
	return p
}

func (p *PropertyBuilder) WithLandlordID(id uuid.UUID) *PropertyBuilder {
	p.LandlordID = id
	return p
}

func (p *PropertyBuilder) WithCity(city string) *PropertyBuilder {
	p.City = city
	return p
}

func (p *PropertyBuilder) WithRent(rent float64) *PropertyBuilder {
	p.Rent = rent
	return p
}

func (p *PropertyBuilder) WithCreatedAt(t time.Time) *PropertyBuilder {
	p.CreatedAt = t
	return p
}

func (p *PropertyBuilder) AsUnavailable() *PropertyBuilder {
	p.IsAvailable = false
	return p
}
