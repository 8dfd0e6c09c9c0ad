package catalogservice

import (
	"testing"

	"github.com/GlebRadaev/ticketbooking/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(s *Service) map[string]int {
	out := make(map[string]int)
	for name, ticket := range s.GetCatalog() {
		out[name] = ticket.Price
	}
	return out
}

var basePrices = map[string]int{
	"Single Race Pass":    120,
	"Weekend Package":     300,
	"Season Membership":   1200,
	"Group Discount Pack": 1000,
}

func TestNew(t *testing.T) {
	service := New()

	catalog := service.GetCatalog()
	require.Len(t, catalog, 4)
	assert.Equal(t, basePrices, prices(service))

	for _, ticket := range catalog {
		assert.False(t, ticket.Discounted())
	}
	assert.True(t, catalog["Group Discount Pack"].Discount)
	assert.False(t, catalog["Single Race Pass"].Discount)
	assert.Equal(t, "Three Days", catalog["Weekend Package"].Validity)
	assert.Equal(t, "Access to all season races", catalog["Season Membership"].Features)
}

func TestEntries(t *testing.T) {
	service := New()

	var names []string
	for _, ticket := range service.Entries() {
		names = append(names, ticket.Name)
	}
	assert.Equal(t, []string{"Single Race Pass", "Weekend Package", "Season Membership", "Group Discount Pack"}, names)
}

func TestPrice(t *testing.T) {
	service := New()

	tests := []struct {
		name          string
		ticketType    string
		expectedPrice int
		expectedError error
	}{
		{name: "Known ticket type", ticketType: "Single Race Pass", expectedPrice: 120},
		{name: "Unknown ticket type", ticketType: "VIP Lounge", expectedError: ErrUnknownTicketType},
		{name: "Ticket type is case-sensitive", ticketType: "single race pass", expectedError: ErrUnknownTicketType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := service.Price(tt.ticketType)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPrice, price)
			}
		})
	}
}

func TestApplyDiscountToAll(t *testing.T) {
	service := New()

	service.ApplyDiscountToAll()
	assert.Equal(t, map[string]int{
		"Single Race Pass":    60,
		"Weekend Package":     150,
		"Season Membership":   600,
		"Group Discount Pack": 500,
	}, prices(service))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DiscountActive))

	for name, ticket := range service.GetCatalog() {
		require.True(t, ticket.Discounted())
		assert.Equal(t, basePrices[name], *ticket.OriginalPrice)
	}

	service.ApplyDiscountToAll()
	price, err := service.Price("Single Race Pass")
	require.NoError(t, err)
	assert.Equal(t, 60, price)
}

func TestApplyDiscountFloorsOddPrices(t *testing.T) {
	service := New()
	service.tickets["Single Race Pass"].Price = 121

	service.ApplyDiscountToAll()
	price, err := service.Price("Single Race Pass")
	require.NoError(t, err)
	assert.Equal(t, 60, price)

	service.DisableDiscountForAll()
	price, err = service.Price("Single Race Pass")
	require.NoError(t, err)
	assert.Equal(t, 121, price)
}

func TestDisableDiscountForAll(t *testing.T) {
	service := New()

	service.DisableDiscountForAll()
	assert.Equal(t, basePrices, prices(service))

	service.ApplyDiscountToAll()
	service.DisableDiscountForAll()
	assert.Equal(t, basePrices, prices(service))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.DiscountActive))
	for _, ticket := range service.GetCatalog() {
		assert.False(t, ticket.Discounted())
	}
}

func TestGetCatalogIsASnapshot(t *testing.T) {
	service := New()
	service.ApplyDiscountToAll()

	catalog := service.GetCatalog()
	ticket := catalog["Weekend Package"]
	*ticket.OriginalPrice = 1
	ticket.Price = 1

	price, err := service.Price("Weekend Package")
	require.NoError(t, err)
	assert.Equal(t, 150, price)

	service.DisableDiscountForAll()
	price, err = service.Price("Weekend Package")
	require.NoError(t, err)
	assert.Equal(t, 300, price)
}
