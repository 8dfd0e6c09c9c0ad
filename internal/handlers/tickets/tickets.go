package tickets

import (
	"net/http"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
	"github.com/GlebRadaev/ticketbooking/internal/dto"
	"github.com/GlebRadaev/ticketbooking/pkg/utils"
)

//go:generate mockgen -source=tickets.go -destination=mock_tickets.go -package=tickets

type Service interface {
	Entries() []domain.TicketDefinition
	ApplyDiscountToAll()
	DisableDiscountForAll()
}

type TicketHandler struct {
	catalogService Service
}

func New(catalogService Service) *TicketHandler {
	return &TicketHandler{
		catalogService: catalogService,
	}
}

// GetCatalog godoc
//
//	@Summary		List ticket types
//	@Description	Current catalog in display order, discounted prices included
//	@Tags			Tickets
//	@Produce		json
//	@Success		200	{array}	dto.TicketResponseDTO
//	@Router			/api/tickets [get]
func (h *TicketHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTicketsResponse(h.catalogService.Entries()))
}

// ApplyDiscount godoc
//
//	@Summary		Halve all prices
//	@Description	Repeated calls keep prices at half of the original
//	@Tags			Tickets
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Router			/api/discount [post]
func (h *TicketHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	h.catalogService.ApplyDiscountToAll()
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "All tickets are now 50% off.",
	})
}

// DisableDiscount godoc
//
//	@Summary		Restore original prices
//	@Tags			Tickets
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Router			/api/discount [delete]
func (h *TicketHandler) DisableDiscount(w http.ResponseWriter, r *http.Request) {
	h.catalogService.DisableDiscountForAll()
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Ticket prices restored.",
	})
}
