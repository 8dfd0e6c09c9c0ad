package service

import (
	"github.com/GlebRadaev/ticketbooking/internal/repo"
	"github.com/GlebRadaev/ticketbooking/internal/service/accountservice"
	"github.com/GlebRadaev/ticketbooking/internal/service/catalogservice"
	"github.com/GlebRadaev/ticketbooking/internal/service/orderservice"
)

// Ledger owns the account, order and catalog services of one process.
type Ledger struct {
	AccountService *accountservice.Service
	OrderService   *orderservice.Service
	CatalogService *catalogservice.Service
}

func New(repo *repo.Repositories) *Ledger {
	catalogService := catalogservice.New()

	return &Ledger{
		AccountService: accountservice.New(repo.AccountRepo),
		OrderService:   orderservice.New(repo.OrderRepo, catalogService),
		CatalogService: catalogService,
	}
}

// CustomerDetails maps every account to the number of orders placed under
// its username.
func (l *Ledger) CustomerDetails() map[string]int {
	usernames := l.AccountService.ListUsernames()
	details := make(map[string]int, len(usernames))
	for _, username := range usernames {
		details[username] = l.OrderService.CustomerOrderCount(username)
	}
	return details
}
