package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketbooking"

var (
	OrdersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_total",
		Help:      "Orders purchased, by ticket type.",
	}, []string{"ticket_type"})

	TicketsSold = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_sold_total",
		Help:      "Ticket quantity sold, by ticket type.",
	}, []string{"ticket_type"})

	Revenue = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "revenue_total",
		Help:      "Sum of order total costs.",
	})

	Accounts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "accounts",
		Help:      "Accounts currently held by the ledger.",
	})

	PersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persist_failures_total",
		Help:      "Write-through saves that failed, by resource.",
	}, []string{"resource"})

	DiscountActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "discount_active",
		Help:      "1 while the catalog-wide discount is applied.",
	})
)

// RecordPurchase updates the sales collectors for one order.
func RecordPurchase(ticketType string, quantity, totalCost int) {
	OrdersTotal.WithLabelValues(ticketType).Inc()
	if quantity > 0 {
		TicketsSold.WithLabelValues(ticketType).Add(float64(quantity))
	}
	if totalCost > 0 {
		Revenue.Add(float64(totalCost))
	}
}
