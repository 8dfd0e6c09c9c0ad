package dto

import (
	"strconv"
	"strings"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
)

type PurchaseRequestDTO struct {
	TicketType    string   `json:"ticket_type" validate:"required" example:"Single Race Pass"`
	Quantity      Quantity `json:"quantity" swaggertype:"integer" example:"3"`
	PaymentMethod string   `json:"payment_method" validate:"required" example:"Credit Card"`
}

// Quantity accepts a JSON number or a numeric string. Anything that is not a
// whole number decodes to zero so the handler reports it as an invalid quantity.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(n)
	return nil
}

type PurchaseResponseDTO struct {
	Message   string `json:"message" example:"Purchase successful."`
	TotalCost int    `json:"total_cost" example:"360"`
}

// GetOrdersResponseDTO carries the position used by DELETE /api/orders/{index}.
type GetOrdersResponseDTO struct {
	Index         int    `json:"index" example:"0"`
	ID            string `json:"id,omitempty" example:"3f1c2b9e-8a3d-4f4e-9b53-2c1d6a7e8f90"`
	Username      string `json:"username" example:"alice"`
	TicketType    string `json:"ticket_type" example:"Single Race Pass"`
	Quantity      int    `json:"quantity" example:"3"`
	TotalCost     int    `json:"total_cost" example:"360"`
	PaymentMethod string `json:"payment_method" example:"Credit Card"`
	Date          string `json:"date" example:"2024-03-09"`
}

func NewGetOrdersResponse(orders []domain.Order) []GetOrdersResponseDTO {
	resp := make([]GetOrdersResponseDTO, 0, len(orders))
	for i, order := range orders {
		resp = append(resp, GetOrdersResponseDTO{
			Index:         i,
			ID:            order.ID,
			Username:      order.Username,
			TicketType:    order.TicketType,
			Quantity:      order.Quantity,
			TotalCost:     order.TotalCost,
			PaymentMethod: order.PaymentMethod,
			Date:          order.Date,
		})
	}
	return resp
}
