package response

import "rental-marketplace/internal/usecase/queries"

type BookingResponse struct {
	Message string               `json:"message,omitempty"`
	Booking *queries.BookingView `json:"booking"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
}

func FromBookingList(items []*queries.BookingView) BookingListResponse {
	if items == nil {
		items = []*queries.BookingView{}
	}
	return BookingListResponse{Bookings: items}
}
