// internal/domain/order/service.go
package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/delivery"
	"github.com/your-org/grocery-backend/internal/domain/pricing"
)

// Service materializes orders from the live cart and owns the order
// history. History is append-only from the core's perspective, newest first,
// and lives for the app session. Safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	carts   *cart.Store
	history []Order
	seq     int
	logger  *logrus.Logger
}

// NewService creates a new order service
func NewService(carts *cart.Store, logger *logrus.Logger) *Service {
	return &Service{
		carts:  carts,
		logger: logger,
	}
}

// CreateInput carries everything an order freezes at checkout. The quote is
// trusted as-is so the order records exactly what the customer saw.
type CreateInput struct {
	Address       Address
	Date          delivery.Date
	Slot          delivery.Slot
	PaymentMethod string
	Quote         pricing.Quote
}

// Create snapshots the current cart plus the given totals into an immutable
// order, prepends it to history, and clears the cart. The cart's single
// post-clear notification is the only observable transition of the step, so
// subscribers never see an order recorded with the cart still populated.
// The lock is released before Clear so subscribers can read the history
// during that notification.
//
// Business preconditions (non-empty cart, chosen slot, successful payment)
// are the caller's responsibility.
func (s *Service) Create(in CreateInput) Order {
	now := time.Now().UTC()

	s.mu.Lock()
	s.seq++

	o := Order{
		ID:            uuid.New().String(),
		OrderNumber:   fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), s.seq),
		CreatedAt:     now,
		Items:         cart.CloneItems(s.carts.Items()),
		Address:       in.Address,
		DeliveryDate:  in.Date,
		DeliverySlot:  in.Slot,
		PaymentMethod: in.PaymentMethod,

		Subtotal:       in.Quote.Subtotal,
		Tax:            in.Quote.Tax,
		DeliveryFee:    in.Quote.DeliveryFee,
		HandlingCharge: in.Quote.HandlingCharge,
		Tip:            in.Quote.Tip,
		Discount:       in.Quote.Discount,
		Total:          in.Quote.Total,

		Status: StatusRequested,
	}

	s.history = append([]Order{o}, s.history...)
	s.mu.Unlock()

	s.carts.Clear()

	s.logger.WithFields(logrus.Fields{
		"order_id":     o.ID,
		"order_number": o.OrderNumber,
		"items":        len(o.Items),
		"total":        o.Total,
	}).Info("Order created")

	return o
}

// Orders returns a copy of the history, newest first, optionally filtered
// by status. Item slices are cloned so callers cannot reach the records.
func (s *Service) Orders(status *Status) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]Order, 0, len(s.history))
	for _, o := range s.history {
		if status != nil && o.Status != *status {
			continue
		}
		o.Items = cart.CloneItems(o.Items)
		orders = append(orders, o)
	}
	return orders
}

// Get returns the order with the given id
func (s *Service) Get(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.history {
		if o.ID == id {
			o.Items = cart.CloneItems(o.Items)
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("order %s not found", id)
}

// SetStatus updates an order's status. This is the surface a fulfillment
// collaborator drives; the core applies no transition rules of its own.
func (s *Service) SetStatus(id string, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, fmt.Errorf("unknown order status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.history {
		if s.history[i].ID == id {
			s.history[i].Status = status
			s.logger.WithFields(logrus.Fields{
				"order_id": id,
				"status":   status,
			}).Info("Order status updated")

			o := s.history[i]
			o.Items = cart.CloneItems(o.Items)
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("order %s not found", id)
}
