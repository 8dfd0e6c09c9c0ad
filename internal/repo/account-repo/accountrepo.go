package accountrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/GlebRadaev/ticketbooking/internal/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=accountrepo.go -destination=mock_accountrepo.go -package=accountrepo

type Store interface {
	Save(ctx context.Context, name string, data any) error
	Load(ctx context.Context, name string, dst any) error
}

// Repository owns the username -> password mapping and writes the whole
// mapping back to its resource after every mutation.
type Repository struct {
	mu       sync.RWMutex
	store    Store
	resource string
	accounts map[string]string
}

func New(store Store, resource string) *Repository {
	return &Repository{
		store:    store,
		resource: resource,
		accounts: make(map[string]string),
	}
}

func (r *Repository) Load(ctx context.Context) error {
	accounts := make(map[string]string)
	if err := r.store.Load(ctx, r.resource, &accounts); err != nil {
		zap.L().Error("can't load accounts", zap.String("resource", r.resource), zap.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = accounts
	metrics.Accounts.Set(float64(len(accounts)))
	zap.L().Info("accounts loaded", zap.String("resource", r.resource), zap.Int("count", len(accounts)))
	return nil
}

func (r *Repository) Find(username string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	password, ok := r.accounts[username]
	return password, ok
}

// Create inserts a new account. It reports false without touching state when
// the username is taken.
func (r *Repository) Create(ctx context.Context, username, password string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[username]; ok {
		return false, nil
	}
	r.accounts[username] = password
	return true, r.persist(ctx)
}

func (r *Repository) Update(ctx context.Context, username, password string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[username]; !ok {
		return false, nil
	}
	r.accounts[username] = password
	return true, r.persist(ctx)
}

func (r *Repository) Delete(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[username]; !ok {
		return false, nil
	}
	delete(r.accounts, username)
	return true, r.persist(ctx)
}

func (r *Repository) Usernames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	usernames := make([]string, 0, len(r.accounts))
	for username := range r.accounts {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	return usernames
}

// persist must be called with mu held. The in-memory change is kept even
// when the save fails.
func (r *Repository) persist(ctx context.Context) error {
	metrics.Accounts.Set(float64(len(r.accounts)))
	if err := r.store.Save(ctx, r.resource, r.accounts); err != nil {
		metrics.PersistFailures.WithLabelValues(r.resource).Inc()
		zap.L().Error("can't save accounts", zap.String("resource", r.resource), zap.Error(err))
		return err
	}
	return nil
}
