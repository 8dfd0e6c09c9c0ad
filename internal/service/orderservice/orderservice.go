package orderservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/ticketbooking/internal/domain"
	"github.com/GlebRadaev/ticketbooking/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	Append(ctx context.Context, order domain.Order) error
	All() []domain.Order
	Delete(ctx context.Context, index int) (bool, error)
}

type Catalog interface {
	Price(ticketType string) (int, error)
}

type Service struct {
	repo    Repo
	catalog Catalog
	now     func() time.Time
}

func New(repo Repo, catalog Catalog) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

// PurchaseTicket records an order priced from the current catalog and returns
// its total cost. Quantity is trusted as given.
func (s *Service) PurchaseTicket(ctx context.Context, username, ticketType string, quantity int, paymentMethod string) (int, error) {
	price, err := s.catalog.Price(ticketType)
	if err != nil {
		zap.L().Info("can't price order", zap.String("ticket_type", ticketType), zap.Error(err))
		return 0, err
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		Username:      username,
		TicketType:    ticketType,
		Quantity:      quantity,
		TotalCost:     price * quantity,
		PaymentMethod: paymentMethod,
		Date:          s.now().Format(domain.DateLayout),
	}

	if err := s.repo.Append(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.String("username", username), zap.Error(err))
		return 0, err
	}

	metrics.RecordPurchase(ticketType, quantity, order.TotalCost)
	zap.L().Info("ticket purchased",
		zap.String("username", username),
		zap.String("ticket_type", ticketType),
		zap.Int("quantity", quantity),
		zap.Int("total_cost", order.TotalCost),
	)
	return order.TotalCost, nil
}

func (s *Service) ListOrders() []domain.Order {
	return s.repo.All()
}

// DeleteOrder removes the order at index; later orders move down by one.
func (s *Service) DeleteOrder(ctx context.Context, index int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, index)
	if err != nil {
		zap.L().Error("can't save orders after delete", zap.Int("index", index), zap.Error(err))
		return deleted, err
	}
	if !deleted {
		zap.L().Info("order index out of range", zap.Int("index", index))
	}
	return deleted, nil
}

func (s *Service) CustomerOrderCount(username string) int {
	count := 0
	for _, order := range s.repo.All() {
		if order.Username == username {
			count++
		}
	}
	return count
}

// GenerateSummary groups all orders by date, then ticket type, summing quantities.
func (s *Service) GenerateSummary() domain.SalesSummary {
	summary := make(domain.SalesSummary)
	for _, order := range s.repo.All() {
		date := order.Date
		if date == "" {
			date = domain.UnknownKey
		}
		ticketType := order.TicketType
		if ticketType == "" {
			ticketType = domain.UnknownKey
		}

		byType, ok := summary[date]
		if !ok {
			byType = make(map[string]int)
			summary[date] = byType
		}
		byType[ticketType] += order.Quantity
	}
	return summary
}
