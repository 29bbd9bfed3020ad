package shared

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

import (
	"context"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ReviewSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	IsApproved bool
}

type UserCredentials struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
}

// SearchCacheInvalidator drops cached property searches after writes that change their results.
type SearchCacheInvalidator interface {
	InvalidateSearch(ctx context.Context)
}
