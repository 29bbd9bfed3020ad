package auth

import (
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.Sentinel("Invalid email or password", errs.ErrUnauthorized)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is the validated input for creating an account.
type Registration struct {
	Name     user.Name
	Email    user.Email
	Password user.Password
	Role     user.Role
}

func NewRegistration(name, email, password, role string) (Registration, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Registration{}, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Registration{}, err
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return Registration{}, err
	}
	r, err := user.NewRole(role)
	if err != nil {
		return Registration{}, err
	}
	if !r.SelfAssignable() {
		return Registration{}, user.ErrInvalidRole
	}
	return Registration{Name: n, Email: e, Password: p, Role: r}, nil
}
