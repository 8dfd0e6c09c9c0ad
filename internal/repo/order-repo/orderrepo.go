package orderrepo

import (
	"context"
	"sync"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
	"github.com/GlebRadaev/ticketbooking/internal/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderrepo.go -destination=mock_orderrepo.go -package=orderrepo

type Store interface {
	Save(ctx context.Context, name string, data any) error
	Load(ctx context.Context, name string, dst any) error
}

// Repository owns the order sequence. An order is addressed by its position,
// so deleting one shifts every later order down by one.
type Repository struct {
	mu       sync.RWMutex
	store    Store
	resource string
	orders   []domain.Order
}

func New(store Store, resource string) *Repository {
	return &Repository{
		store:    store,
		resource: resource,
		orders:   make([]domain.Order, 0),
	}
}

func (r *Repository) Load(ctx context.Context) error {
	orders := make([]domain.Order, 0)
	if err := r.store.Load(ctx, r.resource, &orders); err != nil {
		zap.L().Error("can't load orders", zap.String("resource", r.resource), zap.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = orders
	zap.L().Info("orders loaded", zap.String("resource", r.resource), zap.Int("count", len(orders)))
	return nil
}

func (r *Repository) Append(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return r.persist(ctx)
}

// All returns a copy of the sequence in insertion order.
func (r *Repository) All() []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]domain.Order, len(r.orders))
	copy(orders, r.orders)
	return orders
}

func (r *Repository) Delete(ctx context.Context, index int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.orders) {
		return false, nil
	}
	r.orders = append(r.orders[:index:index], r.orders[index+1:]...)
	return true, r.persist(ctx)
}

func (r *Repository) persist(ctx context.Context) error {
	if err := r.store.Save(ctx, r.resource, r.orders); err != nil {
		metrics.PersistFailures.WithLabelValues(r.resource).Inc()
		zap.L().Error("can't save orders", zap.String("resource", r.resource), zap.Error(err))
		return err
	}
	return nil
}
