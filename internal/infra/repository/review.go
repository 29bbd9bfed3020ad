package repository

import (
	"context"

	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	ApproveReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	row, err := r.queries.CreateReview(ctx, tx, sqlc.CreateReviewParams{
		ID:         rev.ID(),
		PropertyID: rev.PropertyID(),
		TenantID:   rev.TenantID(),
		Rating:     int32(rev.Rating().Value()), // #nosec G115 -- rating is 1..5
		ReviewText: pgconv.StringPtrToPgtype(rev.Text().Ptr()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return row.ID, nil
}

func (r *ReviewRepository) Approve(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if _, err := r.queries.ApproveReview(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to approve review", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteReview(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
