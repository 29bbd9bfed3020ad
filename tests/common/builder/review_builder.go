//go:build unit || e2e

package builder

import (
	"time"

	domreview "rental-marketplace/internal/domain/review"
	reqdto "rental-marketplace/internal/handler/dto/request"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	Rating     int
	ReviewText *string
	IsApproved bool
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	text := "Lovely place, would stay again"
	return &ReviewBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		TenantID:   uuid.New(),
		Rating:     5,
		ReviewText: &text,
		CreatedAt:  time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	text, err := domreview.NewText(r.ReviewText)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.PropertyID, r.TenantID, rating, text, r.CreatedAt), nil
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	var text pgtype.Text
	if r.ReviewText != nil {
		text = pgtype.Text{String: *r.ReviewText, Valid: true}
	}
	return sqlc.Reviews{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		TenantID:   r.TenantID,
		Rating:     int32(r.Rating), // #nosec G115 -- test data
		ReviewText: text,
		IsApproved: r.IsApproved,
		CreatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	rating := r.Rating
	return reqdto.CreateReviewRequest{
		PropertyID: r.PropertyID.String(),
		Rating:     &rating,
		ReviewText: r.ReviewText,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		TenantID:   r.TenantID,
		Rating:     int32(r.Rating), // #nosec G115 -- test data
		ReviewText: r.ReviewText,
		IsApproved: r.IsApproved,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.CreatedAt,
		Property:   queries.ReviewProperty{ID: r.PropertyID, Title: "Sunny loft"},
		Tenant:     queries.Contact{ID: r.TenantID, Name: "Test Tenant", Email: "test@example.com"},
	}
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		TenantID:   r.TenantID,
		IsApproved: r.IsApproved,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithText(text string) *ReviewBuilder {
	r.ReviewText = &text
	return r
}

func (r *ReviewBuilder) WithoutText() *ReviewBuilder {
	r.ReviewText = nil
	return r
}

func (r *ReviewBuilder) WithPropertyID(id uuid.UUID) *ReviewBuilder {
	r.PropertyID = id
	return r
}

func (r *ReviewBuilder) WithTenantID(id uuid.UUID) *ReviewBuilder {
	r.TenantID = id
	return r
}

func (r *ReviewBuilder) AsApproved() *ReviewBuilder {
	r.IsApproved = true
	return r
}
