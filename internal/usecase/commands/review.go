package commands

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review.go -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/property"
	domreview "rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID
	Rating     int
	ReviewText *string
}

type ModerationResult struct {
	ReviewID uuid.UUID
	Deleted  bool
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, tenantID uuid.UUID) (uuid.UUID, error)
	ModerateReview(ctx context.Context, reviewID uuid.UUID, approved bool) (*ModerationResult, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SearchCacheInvalidator
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, cache shared.SearchCacheInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// CreateReview validates input before any store access, then checks eligibility and uniqueness
// in the same transaction as the insert.
func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, tenantID uuid.UUID) (uuid.UUID, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return uuid.Nil, err
	}
	text, err := domreview.NewText(req.ReviewText)
	if err != nil {
		return uuid.Nil, err
	}

	now := uc.clock.Now()
	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().PropertyAccess(ctx, req.PropertyID); derr != nil {
			return translate(derr, infra.KindNotFound, property.ErrNotFound)
		}

		eligibility, derr := tx.Reads().ReviewEligibility(ctx, req.PropertyID, tenantID, now)
		if derr != nil {
			return derr
		}
		if derr = eligibility.Check(); derr != nil {
			return derr
		}

		rev := domreview.NewReview(req.PropertyID, tenantID, rating, text, now)
		id, derr = tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			return translate(derr, infra.KindDuplicateKey, domreview.ErrAlreadyReviewed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ModerateReview approves (idempotently) or permanently deletes a review.
func (uc *reviewCommandsImpl) ModerateReview(ctx context.Context, reviewID uuid.UUID, approved bool) (*ModerationResult, error) {
	decision := domreview.DecisionFromApproved(approved)
	statsChanged := false

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewForUpdate(ctx, reviewID)
		if derr != nil {
			return translate(derr, infra.KindNotFound, domreview.ErrNotFound)
		}

		switch decision {
		case domreview.DecisionApprove:
			if snap.IsApproved {
				return nil
			}
			if derr = tx.Reviews().Approve(ctx, tx.DB(), snap.ID); derr != nil {
				return translate(derr, infra.KindNotFound, domreview.ErrNotFound)
			}
		case domreview.DecisionReject:
			if derr = tx.Reviews().Delete(ctx, tx.DB(), snap.ID); derr != nil {
				return translate(derr, infra.KindNotFound, domreview.ErrNotFound)
			}
			if !snap.IsApproved {
				return nil
			}
		}

		statsChanged = true
		return tx.RatingStats().RecalcPropertyRatingStats(ctx, tx.DB(), snap.PropertyID)
	})
	if err != nil {
		return nil, err
	}

	if statsChanged {
		uc.cache.InvalidateSearch(ctx)
	}
	return &ModerationResult{ReviewID: reviewID, Deleted: decision == domreview.DecisionReject}, nil
}
