package request

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID  string  `json:"propertyId" binding:"required,uuid"`
	StartDate   *Date   `json:"startDate" binding:"required"`
	EndDate     *Date   `json:"endDate" binding:"required"`
	TotalAmount float64 `json:"totalAmount" binding:"required,gt=0"`
	Message     *string `json:"message" binding:"omitempty,max=2000"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		PropertyID:  uuid.MustParse(r.PropertyID),
		StartDate:   r.StartDate.value(),
		EndDate:     r.EndDate.value(),
		TotalAmount: r.TotalAmount,
		Message:     r.Message,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsQuery struct {
	Status string `form:"status"`
}
