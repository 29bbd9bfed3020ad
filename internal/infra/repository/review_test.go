//go:build unit

package repository

import (
	"context"
	"testing"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Create(t *testing.T) {
	t.Run("maps the review to insert params", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().WithRating(4).WithText("Quiet street").BuildDomain()
		require.NoError(t, err)

		mockQueries := new(MockReviewWriteQueries)
		mockQueries.On("CreateReview", mock.Anything, mock.Anything, sqlc.CreateReviewParams{
			ID:         rev.ID(),
			PropertyID: rev.PropertyID(),
			TenantID:   rev.TenantID(),
			Rating:     4,
			ReviewText: pgtype.Text{String: "Quiet street", Valid: true},
		}).Return(sqlc.Reviews{ID: rev.ID()}, nil)

		repo := NewReviewRepository(mockQueries)
		id, err := repo.Create(context.Background(), mockDBTX{}, rev)

		require.NoError(t, err)
		assert.Equal(t, rev.ID(), id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing text is stored as NULL", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().WithoutText().BuildDomain()
		require.NoError(t, err)

		mockQueries := new(MockReviewWriteQueries)
		mockQueries.On("CreateReview", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReviewParams) bool {
			return !p.ReviewText.Valid
		})).Return(sqlc.Reviews{ID: rev.ID()}, nil)

		repo := NewReviewRepository(mockQueries)
		_, err = repo.Create(context.Background(), mockDBTX{}, rev)

		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("second review for the same stay is a duplicate key", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries := new(MockReviewWriteQueries)
		mockQueries.On("CreateReview", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Reviews{}, &pgconn.PgError{Code: "23505", ConstraintName: "reviews_property_id_tenant_id_key"})

		repo := NewReviewRepository(mockQueries)
		_, err = repo.Create(context.Background(), mockDBTX{}, rev)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReviewRepository_Approve(t *testing.T) {
	reviewID := uuid.New()

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReviewWriteQueries)
			mockQueries.On("ApproveReview", mock.Anything, mock.Anything, reviewID).
				Return(sqlc.Reviews{ID: reviewID, IsApproved: true}, tt.mockErr)

			repo := NewReviewRepository(mockQueries)
			err := repo.Approve(context.Background(), mockDBTX{}, reviewID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	reviewID := uuid.New()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "already gone", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReviewWriteQueries)
			mockQueries.On("DeleteReview", mock.Anything, mock.Anything, reviewID).Return(tt.affected, tt.mockErr)

			repo := NewReviewRepository(mockQueries)
			err := repo.Delete(context.Background(), mockDBTX{}, reviewID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
