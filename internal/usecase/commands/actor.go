package commands

import (
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// translate swaps a repository error of the given kind for a domain error.
func translate(err error, kind infra.RepositoryErrorKind, domainErr error) error {
	if infra.IsKind(err, kind) {
		return domainErr
	}
	return err
}
