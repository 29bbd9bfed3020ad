package readstore

import (
	"context"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReviewView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewRow, error)
	ListPendingReviews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListPendingReviewsRow, error)
	GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(row), nil
}

// ListPending returns unapproved reviews, newest first.
func (r *ReviewReadStore) ListPending(ctx context.Context) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListPendingReviews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reviews", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(sqlc.GetReviewViewRow(row))
	}
	return result, nil
}

func (r *ReviewReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	row, err := r.queries.GetReviewForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock review", err)
	}
	return &shared.ReviewSnapshot{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		TenantID:   row.TenantID,
		IsApproved: row.IsApproved,
	}, nil
}

func toReviewView(row sqlc.GetReviewViewRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		TenantID:   row.TenantID,
		Rating:     row.Rating,
		ReviewText: pgconv.StringPtrFromPgtype(row.ReviewText),
		IsApproved: row.IsApproved,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		Property: queries.ReviewProperty{
			ID:    row.PropertyID,
			Title: row.PropertyTitle,
		},
		Tenant: queries.Contact{
			ID:    row.TenantID,
			Name:  row.TenantName,
			Email: row.TenantEmail,
		},
	}
}
