// internal/interfaces/http/handlers/response.go
package handlers

import (
	"time"

	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/delivery"
	"github.com/your-org/grocery-backend/internal/domain/order"
	"github.com/your-org/grocery-backend/internal/domain/pricing"
)

// money converts paise to display units. Rounding to two decimals happens
// only here, at the presentation boundary.
func money(paise int64) float64 {
	return float64(paise) / 100
}

// LineItemDTO is a cart line rendered in display units
type LineItemDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	Total     float64 `json:"total"`
}

// QuoteDTO is a pricing breakdown rendered in display units
type QuoteDTO struct {
	ItemCount      int     `json:"item_count"`
	TotalQuantity  int     `json:"total_quantity"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DeliveryFee    float64 `json:"delivery_fee"`
	HandlingCharge float64 `json:"handling_charge"`
	Tip            float64 `json:"tip"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
}

func toLineItemDTOs(items []cart.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, len(items))
	for i, item := range items {
		dtos[i] = LineItemDTO{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: money(item.UnitPrice),
			Image:     item.Image,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Total:     money(item.TotalPrice()),
		}
	}
	return dtos
}

// OrderDTO is an order rendered in display units
type OrderDTO struct {
	ID             string        `json:"id"`
	OrderNumber    string        `json:"order_number"`
	CreatedAt      time.Time     `json:"created_at"`
	Items          []LineItemDTO `json:"items"`
	Address        order.Address `json:"address"`
	DeliveryDate   delivery.Date `json:"delivery_date"`
	DeliverySlot   delivery.Slot `json:"delivery_slot"`
	PaymentMethod  string        `json:"payment_method"`
	Subtotal       float64       `json:"subtotal"`
	Tax            float64       `json:"tax"`
	DeliveryFee    float64       `json:"delivery_fee"`
	HandlingCharge float64       `json:"handling_charge"`
	Tip            float64       `json:"tip"`
	Discount       float64       `json:"discount"`
	Total          float64       `json:"total"`
	Status         order.Status  `json:"status"`
}

func toOrderDTO(o order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CreatedAt:      o.CreatedAt,
		Items:          toLineItemDTOs(o.Items),
		Address:        o.Address,
		DeliveryDate:   o.DeliveryDate,
		DeliverySlot:   o.DeliverySlot,
		PaymentMethod:  o.PaymentMethod,
		Subtotal:       money(o.Subtotal),
		Tax:            money(o.Tax),
		DeliveryFee:    money(o.DeliveryFee),
		HandlingCharge: money(o.HandlingCharge),
		Tip:            money(o.Tip),
		Discount:       money(o.Discount),
		Total:          money(o.Total),
		Status:         o.Status,
	}
}

func toQuoteDTO(q pricing.Quote) QuoteDTO {
	return QuoteDTO{
		ItemCount:      q.ItemCount,
		TotalQuantity:  q.TotalQuantity,
		Subtotal:       money(q.Subtotal),
		Tax:            money(q.Tax),
		DeliveryFee:    money(q.DeliveryFee),
		HandlingCharge: money(q.HandlingCharge),
		Tip:            money(q.Tip),
		Discount:       money(q.Discount),
		Total:          money(q.Total),
	}
}
