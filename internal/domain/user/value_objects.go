package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"rental-marketplace/internal/pkg/errs"
)

const MaxNameLength = 100

var (
	ErrInvalidEmail    = errs.Sentinel("Invalid email address", errs.ErrValidation)
	ErrInvalidRole     = errs.Sentinel("Invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.Sentinel("Password must be at least 8 characters long", errs.ErrValidation)
	ErrInvalidName     = errs.Sentinel("Name must be between 1 and 100 characters", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address; uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
