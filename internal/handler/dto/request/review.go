package request

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID string  `json:"propertyId" binding:"required,uuid"`
	Rating     *int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText *string `json:"reviewText" binding:"omitempty,max=1000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		PropertyID: uuid.MustParse(r.PropertyID),
		Rating:     *r.Rating,
		ReviewText: r.ReviewText,
	}
}

type ModerateReviewRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
