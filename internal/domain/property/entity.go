package property

import (
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

type Property struct {
	id            uuid.UUID
	landlordID    uuid.UUID
	title         string
	description   string
	address       Address
	rent          money.Money
	rooms         Rooms
	availableFrom time.Time
	isAvailable   bool
	images        []Image
	createdAt     time.Time
}

type NewPropertyInput struct {
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
	ImageURLs     []string
}

// NewProperty validates fields in form order so the first failure is reported.
func NewProperty(in NewPropertyInput, now time.Time) (*Property, error) {
	title, err := newText(in.Title, MaxTitleLength, ErrInvalidTitle)
	if err != nil {
		return nil, err
	}
	desc, err := newText(in.Description, MaxDescriptionLength, ErrInvalidDesc)
	if err != nil {
		return nil, err
	}
	addr, err := NewAddress(in.Street, in.City, in.PostalCode)
	if err != nil {
		return nil, err
	}
	rent, err := money.FromFloat(in.Rent)
	if err != nil {
		return nil, ErrInvalidRent
	}
	rooms, err := NewRooms(in.Bedrooms, in.Bathrooms)
	if err != nil {
		return nil, err
	}
	if in.AvailableFrom.IsZero() {
		return nil, ErrInvalidDate
	}
	images, err := NewImages(in.ImageURLs)
	if err != nil {
		return nil, err
	}

	return &Property{
		id:            uuid.New(),
		landlordID:    in.LandlordID,
		title:         title,
		description:   desc,
		address:       addr,
		rent:          rent,
		rooms:         rooms,
		availableFrom: in.AvailableFrom,
		isAvailable:   true,
		images:        images,
		createdAt:     now,
	}, nil
}

func (p *Property) ID() uuid.UUID            { return p.id }
func (p *Property) LandlordID() uuid.UUID    { return p.landlordID }
func (p *Property) Title() string            { return p.title }
func (p *Property) Description() string      { return p.description }
func (p *Property) Address() Address         { return p.address }
func (p *Property) Rent() money.Money        { return p.rent }
func (p *Property) Rooms() Rooms             { return p.rooms }
func (p *Property) AvailableFrom() time.Time { return p.availableFrom }
func (p *Property) IsAvailable() bool        { return p.isAvailable }
func (p *Property) Images() []Image          { return p.images }
func (p *Property) CreatedAt() time.Time     { return p.createdAt }

// Access is the minimal view needed for ownership checks.
type Access struct {
	ID          uuid.UUID
	LandlordID  uuid.UUID
	IsAvailable bool
}

func (a Access) EnsureManageableBy(role user.Role, actorID uuid.UUID) error {
	if !user.CanManageProperty(role, actorID, a.LandlordID) {
		return ErrNotOwner
	}
	return nil
}

func (a Access) EnsureBookable() error {
	if !a.IsAvailable {
		return ErrNotAvailable
	}
	return nil
}
