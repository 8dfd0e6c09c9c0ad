package customers

import (
	"net/http"

	"github.com/GlebRadaev/ticketbooking/pkg/utils"
)

//go:generate mockgen -source=customers.go -destination=mock_customers.go -package=customers

type Service interface {
	CustomerDetails() map[string]int
}

type CustomerHandler struct {
	ledger Service
}

func New(ledger Service) *CustomerHandler {
	return &CustomerHandler{
		ledger: ledger,
	}
}

// GetCustomers godoc
//
//	@Summary		List customers
//	@Description	Every account with the number of orders placed under its username
//	@Tags			Customers
//	@Produce		json
//	@Success		200	{object}	map[string]int
//	@Router			/api/customers [get]
func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.ledger.CustomerDetails())
}
