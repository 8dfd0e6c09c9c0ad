package catalogservice

import (
	"errors"
	"sync"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
	"github.com/GlebRadaev/ticketbooking/internal/metrics"
	"go.uber.org/zap"
)

var ErrUnknownTicketType = errors.New("unknown ticket type")

// DefaultCatalog is the fixed set of ticket definitions every process starts with.
func DefaultCatalog() []domain.TicketDefinition {
	return []domain.TicketDefinition{
		{Name: "Single Race Pass", Price: 120, Validity: "One Day", Features: "Access to one race"},
		{Name: "Weekend Package", Price: 300, Validity: "Three Days", Features: "All races during the weekend"},
		{Name: "Season Membership", Price: 1200, Validity: "Full Season", Features: "Access to all season races"},
		{Name: "Group Discount Pack", Price: 1000, Validity: "One Day", Features: "10 tickets at a discounted rate", Discount: true},
	}
}

// Service holds the catalog for the life of the process. Prices are never
// persisted, so a restart always brings back DefaultCatalog.
type Service struct {
	mu      sync.RWMutex
	names   []string
	tickets map[string]*domain.TicketDefinition
}

func New() *Service {
	s := &Service{
		tickets: make(map[string]*domain.TicketDefinition),
	}
	for _, ticket := range DefaultCatalog() {
		ticket := ticket
		s.names = append(s.names, ticket.Name)
		s.tickets[ticket.Name] = &ticket
	}
	return s
}

// GetCatalog returns a snapshot of every definition keyed by ticket type.
func (s *Service) GetCatalog() map[string]domain.TicketDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	catalog := make(map[string]domain.TicketDefinition, len(s.tickets))
	for name, ticket := range s.tickets {
		catalog[name] = snapshot(ticket)
	}
	return catalog
}

// Entries returns the definitions in declaration order.
func (s *Service) Entries() []domain.TicketDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.TicketDefinition, 0, len(s.names))
	for _, name := range s.names {
		entries = append(entries, snapshot(s.tickets[name]))
	}
	return entries
}

// Price returns the current unit price, discount included.
func (s *Service) Price(ticketType string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ticket, ok := s.tickets[ticketType]
	if !ok {
		return 0, ErrUnknownTicketType
	}
	return ticket.Price, nil
}

// ApplyDiscountToAll halves every price that is not already discounted.
func (s *Service) ApplyDiscountToAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ticket := range s.tickets {
		if ticket.OriginalPrice != nil {
			continue
		}
		original := ticket.Price
		ticket.OriginalPrice = &original
		ticket.Price = original / 2
	}
	metrics.DiscountActive.Set(1)
	zap.L().Info("discount applied to all tickets")
}

// DisableDiscountForAll restores every shadowed price.
func (s *Service) DisableDiscountForAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ticket := range s.tickets {
		if ticket.OriginalPrice == nil {
			continue
		}
		ticket.Price = *ticket.OriginalPrice
		ticket.OriginalPrice = nil
	}
	metrics.DiscountActive.Set(0)
	zap.L().Info("discount disabled for all tickets")
}

func snapshot(ticket *domain.TicketDefinition) domain.TicketDefinition {
	out := *ticket
	if ticket.OriginalPrice != nil {
		original := *ticket.OriginalPrice
		out.OriginalPrice = &original
	}
	return out
}
