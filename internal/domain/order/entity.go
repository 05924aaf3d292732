// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/delivery"
)

// Status represents the order status. Transitions beyond Requested are
// driven by an external fulfillment collaborator, never inferred in-core.
type Status string

const (
	StatusRequested Status = "requested"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	switch s {
	case StatusRequested, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Address is the delivery address frozen onto an order
type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Order is an immutable record materialized at checkout. Items are a deep
// copy of the cart at creation time, and the totals are the exact amounts
// the customer saw; neither is recomputed afterwards.
// All amounts are in paise.
type Order struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []cart.LineItem `json:"items"`
	Address       Address         `json:"address"`
	DeliveryDate  delivery.Date   `json:"delivery_date"`
	DeliverySlot  delivery.Slot   `json:"delivery_slot"`
	PaymentMethod string          `json:"payment_method"`

	Subtotal       int64 `json:"subtotal"`
	Tax            int64 `json:"tax"`
	DeliveryFee    int64 `json:"delivery_fee"`
	HandlingCharge int64 `json:"handling_charge"`
	Tip            int64 `json:"tip"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`

	Status Status `json:"status"`
}
