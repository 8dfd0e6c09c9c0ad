package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/ticketbooking/docs"
	accounthandlers "github.com/GlebRadaev/ticketbooking/internal/handlers/accounts"
	customerhandlers "github.com/GlebRadaev/ticketbooking/internal/handlers/customers"
	orderhandlers "github.com/GlebRadaev/ticketbooking/internal/handlers/orders"
	tickethandlers "github.com/GlebRadaev/ticketbooking/internal/handlers/tickets"
	"github.com/GlebRadaev/ticketbooking/internal/service"
	"github.com/GlebRadaev/ticketbooking/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AccountHandler interface {
	AddAccount(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	EditAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type TicketHandler interface {
	GetCatalog(w http.ResponseWriter, r *http.Request)
	ApplyDiscount(w http.ResponseWriter, r *http.Request)
	DisableDiscount(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	GetCustomers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler  AccountHandler
	TicketHandler   TicketHandler
	OrderHandler    OrderHandler
	CustomerHandler CustomerHandler

	tokens auth.TokenValidator
}

func New(l *service.Ledger, tokens auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AccountHandler:  accounthandlers.New(l.AccountService, tokens),
		TicketHandler:   tickethandlers.New(l.CatalogService),
		OrderHandler:    orderhandlers.New(l.OrderService),
		CustomerHandler: customerhandlers.New(l),
		tokens:          tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AccountHandler.Login)
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.AccountHandler.AddAccount)
			r.Put("/{username}", h.AccountHandler.EditAccount)
			r.Delete("/{username}", h.AccountHandler.DeleteAccount)
		})
		r.Get("/customers", h.CustomerHandler.GetCustomers)

		r.Get("/tickets", h.TicketHandler.GetCatalog)
		r.Route("/discount", func(r chi.Router) {
			r.Post("/", h.TicketHandler.ApplyDiscount)
			r.Delete("/", h.TicketHandler.DisableDiscount)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.OrderHandler.GetOrders)
			r.Delete("/{index}", h.OrderHandler.DeleteOrder)
			r.With(auth.AuthMiddleware(h.tokens)).Post("/", h.OrderHandler.Purchase)
		})
		r.Get("/summary", h.OrderHandler.GetSummary)
	})

	return r
}
