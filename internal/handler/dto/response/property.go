package response

import "rental-marketplace/internal/usecase/queries"

type PropertyResponse struct {
	Message  string                  `json:"message,omitempty"`
	Property *queries.PropertyDetail `json:"property"`
}

type PropertySearchResponse struct {
	Properties []*queries.PropertyListItem `json:"properties"`
	NextCursor string                      `json:"nextCursor,omitempty"`
}

func FromSearchResult(r *queries.PropertySearchResult) PropertySearchResponse {
	res := PropertySearchResponse{Properties: r.Items}
	if res.Properties == nil {
		res.Properties = []*queries.PropertyListItem{}
	}
	if r.Next != nil {
		res.NextCursor = r.Next.After
	}
	return res
}

type LandlordPropertiesResponse struct {
	Properties []*queries.LandlordPropertyItem `json:"properties"`
}

type AdminPropertiesResponse struct {
	Properties []*queries.AdminPropertyItem `json:"properties"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
