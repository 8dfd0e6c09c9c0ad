package dto

import "github.com/GlebRadaev/ticketbooking/internal/domain"

type TicketResponseDTO struct {
	Name          string `json:"name" example:"Single Race Pass"`
	Price         int    `json:"price" example:"120"`
	Validity      string `json:"validity" example:"One Day"`
	Features      string `json:"features" example:"Access to one race"`
	Discount      bool   `json:"discount" example:"false"`
	OriginalPrice *int   `json:"original_price,omitempty" example:"240"`
}

func NewTicketsResponse(tickets []domain.TicketDefinition) []TicketResponseDTO {
	resp := make([]TicketResponseDTO, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, TicketResponseDTO{
			Name:          t.Name,
			Price:         t.Price,
			Validity:      t.Validity,
			Features:      t.Features,
			Discount:      t.Discount,
			OriginalPrice: t.OriginalPrice,
		})
	}
	return resp
}
