package response

import "rental-marketplace/internal/usecase/queries"

type ReviewResponse struct {
	Message string              `json:"message,omitempty"`
	Review  *queries.ReviewView `json:"review,omitempty"`
}

type ReviewListResponse struct {
	Reviews []*queries.ReviewView `json:"reviews"`
}

func FromReviewList(items []*queries.ReviewView) ReviewListResponse {
	if items == nil {
		items = []*queries.ReviewView{}
	}
	return ReviewListResponse{Reviews: items}
}
