package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Error categories shared by every layer. Concrete errors are marked with one of these
// so handlers can pick a status without knowing the concrete error.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Sentinel returns an error with msg that also matches category under errors.Is.
func Sentinel(msg string, category error) error {
	return Mark(New(msg), category)
}

// Is understands marks; the standard library errors.Is does not.
func Is(err, reference error) bool { return cr.Is(err, reference) }

func IsValidation(err error) bool   { return cr.Is(err, ErrValidation) }
func IsNotFound(err error) bool     { return cr.Is(err, ErrNotFound) }
func IsConflict(err error) bool     { return cr.Is(err, ErrConflict) }
func IsForbidden(err error) bool    { return cr.Is(err, ErrForbidden) }
func IsUnauthorized(err error) bool { return cr.Is(err, ErrUnauthorized) }
