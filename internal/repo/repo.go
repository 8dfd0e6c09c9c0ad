package repo

import (
	"context"
	"fmt"

	accountrepo "github.com/GlebRadaev/ticketbooking/internal/repo/account-repo"
	orderrepo "github.com/GlebRadaev/ticketbooking/internal/repo/order-repo"
	"github.com/GlebRadaev/ticketbooking/internal/service/accountservice"
	"github.com/GlebRadaev/ticketbooking/internal/service/orderservice"
	"golang.org/x/sync/errgroup"
)

type Store interface {
	accountrepo.Store
}

type Repositories struct {
	AccountRepo accountservice.Repo
	OrderRepo   orderservice.Repo

	accounts *accountrepo.Repository
	orders   *orderrepo.Repository
}

func New(store Store, accountsResource, ordersResource string) *Repositories {
	accountRepo := accountrepo.New(store, accountsResource)
	orderRepo := orderrepo.New(store, ordersResource)

	return &Repositories{
		AccountRepo: accountRepo,
		OrderRepo:   orderRepo,
		accounts:    accountRepo,
		orders:      orderRepo,
	}
}

// Load reads both resources. They are independent, so they load concurrently.
func (r *Repositories) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.accounts.Load(ctx); err != nil {
			return fmt.Errorf("can't load accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.orders.Load(ctx); err != nil {
			return fmt.Errorf("can't load orders: %w", err)
		}
		return nil
	})
	return g.Wait()
}
