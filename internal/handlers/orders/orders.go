package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
	"github.com/GlebRadaev/ticketbooking/internal/dto"
	"github.com/GlebRadaev/ticketbooking/internal/service/catalogservice"
	"github.com/GlebRadaev/ticketbooking/pkg/auth"
	"github.com/GlebRadaev/ticketbooking/pkg/utils"
	"github.com/GlebRadaev/ticketbooking/pkg/validate"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	PurchaseTicket(ctx context.Context, username, ticketType string, quantity int, paymentMethod string) (int, error)
	ListOrders() []domain.Order
	DeleteOrder(ctx context.Context, index int) (bool, error)
	GenerateSummary() domain.SalesSummary
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Purchase godoc
//
//	@Summary		Buy tickets
//	@Description	Record an order for the logged-in user priced from the current catalog
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PurchaseRequestDTO	true	"Purchase request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PurchaseResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request or unknown ticket type"
//	@Failure		401	{object}	utils.Response	"User not logged in"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "You must be logged in to purchase tickets!")
		return
	}

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Enter a valid quantity.")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.orderService.PurchaseTicket(r.Context(), username, req.TicketType, int(req.Quantity), req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrUnknownTicketType):
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown ticket type.")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseResponseDTO{
		Message:   fmt.Sprintf("Total cost: $%d", total),
		TotalCost: total,
	})
}

// GetOrders godoc
//
//	@Summary		List all orders
//	@Description	Orders in placement order; index is the position used for deletion
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}	dto.GetOrdersResponseDTO
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGetOrdersResponse(h.orderService.ListOrders()))
}

// DeleteOrder godoc
//
//	@Summary		Delete an order by position
//	@Description	Later orders shift down by one
//	@Tags			Orders
//	@Produce		json
//	@Param			index	path		int	true	"Order position"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Index is not a number"
//	@Failure		404		{object}	utils.Response	"No order at index"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{index} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order index")
		return
	}

	deleted, err := h.orderService.DeleteOrder(r.Context(), index)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		utils.RespondWithError(w, http.StatusNotFound, "Could not delete order.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "Order deleted successfully.",
	})
}

// GetSummary godoc
//
//	@Summary		Sales summary
//	@Description	Quantities sold grouped by date, then ticket type
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	map[string]map[string]int
//	@Router			/api/summary [get]
func (h *OrderHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.orderService.GenerateSummary())
}
