package commands

//go:generate mockgen -source=property.go -destination=../../../tests/mock/commands/property.go -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyCommands interface {
	CreateProperty(ctx context.Context, in property.NewPropertyInput, actor Actor) (uuid.UUID, error)
	DeleteProperty(ctx context.Context, propertyID uuid.UUID, actor Actor) error
	SetAvailability(ctx context.Context, propertyID uuid.UUID, available bool, actor Actor) error
}

type propertyCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SearchCacheInvalidator
	clock clock.Clock
}

func NewPropertyCommands(uow shared.UnitOfWork, cache shared.SearchCacheInvalidator, clk clock.Clock) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// CreateProperty always lists the property under the caller.
func (uc *propertyCommandsImpl) CreateProperty(ctx context.Context, in property.NewPropertyInput, actor Actor) (uuid.UUID, error) {
	in.LandlordID = actor.ID
	p, err := property.NewProperty(in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Properties().Create(ctx, tx.DB(), p)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.cache.InvalidateSearch(ctx)
	return id, nil
}

func (uc *propertyCommandsImpl) DeleteProperty(ctx context.Context, propertyID uuid.UUID, actor Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		access, derr := tx.Reads().PropertyAccessForUpdate(ctx, propertyID)
		if derr != nil {
			return translate(derr, infra.KindNotFound, property.ErrNotFound)
		}
		if derr = access.EnsureManageableBy(actor.Role, actor.ID); derr != nil {
			return derr
		}
		return translate(tx.Properties().Delete(ctx, tx.DB(), propertyID), infra.KindNotFound, property.ErrNotFound)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateSearch(ctx)
	return nil
}

// SetAvailability flips the listing flag only. Existing bookings are left untouched;
// approving a pending booking later re-checks the flag.
func (uc *propertyCommandsImpl) SetAvailability(ctx context.Context, propertyID uuid.UUID, available bool, actor Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		access, derr := tx.Reads().PropertyAccessForUpdate(ctx, propertyID)
		if derr != nil {
			return translate(derr, infra.KindNotFound, property.ErrNotFound)
		}
		if derr = access.EnsureManageableBy(actor.Role, actor.ID); derr != nil {
			return derr
		}
		return translate(tx.Properties().SetAvailability(ctx, tx.DB(), propertyID, available), infra.KindNotFound, property.ErrNotFound)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateSearch(ctx)
	return nil
}
