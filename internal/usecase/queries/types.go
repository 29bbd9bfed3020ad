package queries

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ImageView struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// PropertyListItem is one search hit. Rating fields only count approved reviews.
type PropertyListItem struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	PostalCode    string      `json:"postalCode"`
	Rent          float64     `json:"rent"`
	Bedrooms      int32       `json:"bedrooms"`
	Bathrooms     int32       `json:"bathrooms"`
	AvailableFrom time.Time   `json:"availableFrom"`
	IsAvailable   bool        `json:"isAvailable"`
	CreatedAt     time.Time   `json:"createdAt"`
	Images        []ImageView `json:"images"`
	Landlord      Contact     `json:"landlord"`
	ReviewCount   int32       `json:"reviewCount"`
	AverageRating float64     `json:"averageRating"`
}

type PropertyReview struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenantId"`
	TenantName string    `json:"tenantName"`
	Rating     int32     `json:"rating"`
	ReviewText *string   `json:"reviewText,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type PropertyDetail struct {
	PropertyListItem
	Reviews   []PropertyReview `json:"reviews"`
	CanReview bool             `json:"canReview"`
}

type PropertySearchResult struct {
	Items []*PropertyListItem `json:"items"`
	Next  *Cursor             `json:"next,omitempty"`
}

type PropertyFilters struct {
	City      *string  `json:"city,omitempty"`
	MinRent   *float64 `json:"minRent,omitempty"`
	MaxRent   *float64 `json:"maxRent,omitempty"`
	Bedrooms  *int     `json:"bedrooms,omitempty"`
	Bathrooms *int     `json:"bathrooms,omitempty"`
}

type LandlordPropertyItem struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	City            string    `json:"city"`
	Rent            float64   `json:"rent"`
	IsAvailable     bool      `json:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt"`
	PendingBookings int64     `json:"pendingBookings"`
	TotalBookings   int64     `json:"totalBookings"`
	TotalReviews    int64     `json:"totalReviews"`
}

type AdminPropertyItem struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	City          string    `json:"city"`
	Rent          float64   `json:"rent"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	Landlord      Contact   `json:"landlord"`
	TotalBookings int64     `json:"totalBookings"`
	TotalReviews  int64     `json:"totalReviews"`
}

type BookingProperty struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	PrimaryImage *string   `json:"primaryImage,omitempty"`
	Landlord     Contact   `json:"landlord"`
}

type BookingView struct {
	ID          uuid.UUID       `json:"id"`
	PropertyID  uuid.UUID       `json:"propertyId"`
	TenantID    uuid.UUID       `json:"tenantId"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	TotalAmount float64         `json:"totalAmount"`
	Message     *string         `json:"message,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Property    BookingProperty `json:"property"`
	Tenant      Contact         `json:"tenant"`
}

type ReviewProperty struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type ReviewView struct {
	ID         uuid.UUID      `json:"id"`
	PropertyID uuid.UUID      `json:"propertyId"`
	TenantID   uuid.UUID      `json:"tenantId"`
	Rating     int32          `json:"rating"`
	ReviewText *string        `json:"reviewText,omitempty"`
	IsApproved bool           `json:"isApproved"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Property   ReviewProperty `json:"property"`
	Tenant     Contact        `json:"tenant"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
