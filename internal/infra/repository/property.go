package repository

import (
	"context"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) (sqlc.Properties, error)
	CreatePropertyImage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyImageParams) error
	SetPropertyAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPropertyAvailabilityParams) (sqlc.Properties, error)
	DeleteProperty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

// Create inserts the property and its images; callers run it inside a transaction.
func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) (uuid.UUID, error) {
	row, err := r.queries.CreateProperty(ctx, tx, sqlc.CreatePropertyParams{
		ID:            p.ID(),
		LandlordID:    p.LandlordID(),
		Title:         p.Title(),
		Description:   p.Description(),
		Address:       p.Address().Street(),
		City:          p.Address().City(),
		PostalCode:    p.Address().PostalCode(),
		Rent:          pgconv.CentsToNumeric(p.Rent().Cents()),
		Bedrooms:      int32(p.Rooms().Bedrooms()),  // #nosec G115 -- validated positive and small
		Bathrooms:     int32(p.Rooms().Bathrooms()), // #nosec G115 -- validated positive and small
		AvailableFrom: pgconv.DateToPgtype(p.AvailableFrom()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create property", err)
	}

	for i, img := range p.Images() {
		err = r.queries.CreatePropertyImage(ctx, tx, sqlc.CreatePropertyImageParams{
			PropertyID: row.ID,
			Url:        img.URL(),
			IsPrimary:  img.IsPrimary(),
			Position:   int32(i), // #nosec G115 -- bounded by property.MaxImages
		})
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create property image", err)
		}
	}

	return row.ID, nil
}

func (r *PropertyRepository) SetAvailability(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, available bool) error {
	_, err := r.queries.SetPropertyAvailability(ctx, tx, sqlc.SetPropertyAvailabilityParams{
		ID:          id,
		IsAvailable: available,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update property availability", err)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteProperty(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}
