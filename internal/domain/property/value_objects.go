package property

import (
	"strings"
	"unicode/utf8"
)

type Address struct {
	street     string
	city       string
	postalCode string
}

func NewAddress(street, city, postalCode string) (Address, error) {
	a := Address{
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		postalCode: strings.TrimSpace(postalCode),
	}
	if a.street == "" || a.city == "" || a.postalCode == "" {
		return Address{}, ErrInvalidAddress
	}
	return a, nil
}

func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }

type Rooms struct {
	bedrooms  int
	bathrooms int
}

func NewRooms(bedrooms, bathrooms int) (Rooms, error) {
	if bedrooms <= 0 || bathrooms <= 0 {
		return Rooms{}, ErrInvalidRooms
	}
	return Rooms{bedrooms: bedrooms, bathrooms: bathrooms}, nil
}

func (r Rooms) Bedrooms() int  { return r.bedrooms }
func (r Rooms) Bathrooms() int { return r.bathrooms }

type Image struct {
	url       string
	isPrimary bool
}

func (i Image) URL() string     { return i.url }
func (i Image) IsPrimary() bool { return i.isPrimary }

// NewImages marks the first url primary and falls back to a placeholder when none are given.
func NewImages(urls []string) ([]Image, error) {
	if len(urls) > MaxImages {
		return nil, ErrTooManyImages
	}
	if len(urls) == 0 {
		return []Image{{url: PlaceholderImageURL, isPrimary: true}}, nil
	}
	images := make([]Image, 0, len(urls))
	for i, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			return nil, ErrInvalidImage
		}
		images = append(images, Image{url: u, isPrimary: i == 0})
	}
	return images, nil
}

func newText(s string, maxLen int, errEmpty error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxLen {
		return "", errEmpty
	}
	return s, nil
}
