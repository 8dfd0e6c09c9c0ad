package domain

// DateLayout is the calendar-date format stored on every order.
const DateLayout = "2006-01-02"

// UnknownKey replaces a missing date or ticket type when orders are summarised.
const UnknownKey = "Unknown"

type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TicketDefinition struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Validity string `json:"validity"`
	Features string `json:"features"`
	Discount bool   `json:"discount"`
	// OriginalPrice is set only while a discount halves Price.
	OriginalPrice *int `json:"original_price,omitempty"`
}

// Discounted reports whether the definition currently carries a shadow price.
func (t TicketDefinition) Discounted() bool {
	return t.OriginalPrice != nil
}

// Order is never mutated after creation. Username and TicketType are soft
// references: neither is checked against accounts or the catalog.
type Order struct {
	ID            string `json:"id,omitempty"`
	Username      string `json:"username"`
	TicketType    string `json:"ticket_type"`
	Quantity      int    `json:"quantity"`
	TotalCost     int    `json:"total_cost"`
	PaymentMethod string `json:"payment_method"`
	Date          string `json:"date"`
}

// SalesSummary maps date -> ticket type -> summed quantity.
type SalesSummary map[string]map[string]int
