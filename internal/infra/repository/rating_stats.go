package repository

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	UpsertPropertyRatingStats(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) error
}

type RatingStatsRepository struct {
	queries RatingStatsQueries
}

func NewRatingStatsRepository(queries RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries}
}

// RecalcPropertyRatingStats rebuilds the cached count and average from approved reviews.
func (r *RatingStatsRepository) RecalcPropertyRatingStats(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID) error {
	if err := r.queries.UpsertPropertyRatingStats(ctx, tx, propertyID); err != nil {
		return infra.WrapRepoErr("failed to recalculate property rating stats", err)
	}
	return nil
}
