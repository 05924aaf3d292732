// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/grocery-backend/internal/config"
	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/delivery"
	"github.com/your-org/grocery-backend/internal/domain/order"
	"github.com/your-org/grocery-backend/internal/domain/payment"
	"github.com/your-org/grocery-backend/internal/domain/pricing"
)

// Precondition errors surfaced before any state changes
var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrNoDeliverySelection = errors.New("select a delivery date and slot first")
)

// Service orchestrates the checkout flow: it holds the at-most-one applied
// coupon, the tip, and the delivery selection, and drives payment then order
// materialization. Totals are never cached here; every summary recomputes
// from the live cart snapshot.
//
// Safe for concurrent use. PlaceOrder holds the lock across the payment
// wait so two simultaneous submissions cannot both materialize the cart.
type Service struct {
	cfg      *config.Config
	carts    *cart.Store
	engine   *pricing.Engine
	payments *payment.Service
	orders   *order.Service
	logger   *logrus.Logger

	mu        sync.Mutex
	dates     []delivery.Date
	selection delivery.Selection
	offer     *pricing.Offer
	tip       int64

	now func() time.Time
}

// NewService creates a checkout service. The delivery window is anchored at
// construction and re-anchored whenever the clock crosses midnight.
func NewService(cfg *config.Config, carts *cart.Store, engine *pricing.Engine, payments *payment.Service, orders *order.Service, logger *logrus.Logger) *Service {
	s := &Service{
		cfg:      cfg,
		carts:    carts,
		engine:   engine,
		payments: payments,
		orders:   orders,
		logger:   logger,
		now:      time.Now,
	}
	s.dates = delivery.GenerateDates(s.now(), cfg.Delivery.WindowDays)
	return s
}

// window returns the delivery dates, regenerating them when the first day
// of the generated window is no longer today. A selection whose date fell
// out of the refreshed window is discarded; a selection still inside it is
// rebound to the refreshed date, keeping its slot. Callers hold s.mu.
func (s *Service) window() []delivery.Date {
	todayID := s.now().Format("2006-01-02")
	if len(s.dates) > 0 && s.dates[0].ID == todayID {
		return s.dates
	}

	s.dates = delivery.GenerateDates(s.now(), s.cfg.Delivery.WindowDays)

	if d, ok := s.selection.Date(); ok {
		kept := false
		for i := range s.dates {
			if s.dates[i].ID == d.ID {
				s.selection.SelectDate(s.dates[i])
				kept = true
				break
			}
		}
		if !kept {
			s.selection.Reset()
			s.logger.WithField("date", d.ID).Info("Delivery selection expired with the window")
		}
	}
	return s.dates
}

// Dates returns the selectable delivery window
func (s *Service) Dates() []delivery.Date {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := s.window()
	dates := make([]delivery.Date, len(window))
	copy(dates, window)
	return dates
}

// SlotsFor returns the slots of a date in the current window
func (s *Service) SlotsFor(dateID string) ([]delivery.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.window() {
		if d.ID == dateID {
			return delivery.GenerateSlots(d.ID, delivery.DefaultSlotTemplate), nil
		}
	}
	return nil, fmt.Errorf("date %s is outside the delivery window", dateID)
}

// SelectDelivery chooses a date and slot. Choosing a date different from
// the current selection discards the previous slot before the new slot is
// applied.
func (s *Service) SelectDelivery(dateID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := s.window()
	var chosen *delivery.Date
	for i := range window {
		if window[i].ID == dateID {
			chosen = &window[i]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("date %s is outside the delivery window", dateID)
	}

	s.selection.SelectDate(*chosen)

	for _, slot := range delivery.GenerateSlots(chosen.ID, delivery.DefaultSlotTemplate) {
		if slot.ID == slotID {
			return s.selection.SelectSlot(slot)
		}
	}
	return fmt.Errorf("slot %s not found on date %s", slotID, dateID)
}

// SelectDate chooses only a date, resetting any slot from another date
func (s *Service) SelectDate(dateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := s.window()
	for i := range window {
		if window[i].ID == dateID {
			s.selection.SelectDate(window[i])
			return nil
		}
	}
	return fmt.Errorf("date %s is outside the delivery window", dateID)
}

// ApplyCoupon validates a code against the current subtotal. On success the
// new offer replaces any previously applied one; rejection outcomes leave
// the existing coupon untouched.
func (s *Service) ApplyCoupon(code string) pricing.CouponOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.engine.Subtotal(s.carts.Items())
	outcome := s.engine.ValidateCoupon(code, subtotal, s.now())

	if outcome.Applied() {
		s.offer = outcome.Offer
		s.logger.WithFields(logrus.Fields{
			"code":     outcome.Code,
			"discount": outcome.Discount,
		}).Info("Coupon applied")
	}

	return outcome
}

// RemoveCoupon clears the applied offer; the discount drops to zero on the
// next summary
func (s *Service) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offer = nil
}

// AppliedOffer returns the currently applied offer, or nil
func (s *Service) AppliedOffer() *pricing.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offer
}

// SetTipPreset selects one of the configured preset tip amounts
func (s *Service) SetTipPreset(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tip = s.engine.TipPreset(index)
}

// SetTipCustom sets a user-entered tip; invalid input resolves to zero
func (s *Service) SetTipCustom(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tip = pricing.ParseCustomTip(raw)
}

// Summary recomputes the full pricing breakdown from the live cart
func (s *Service) Summary() pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote()
}

func (s *Service) quote() pricing.Quote {
	return s.engine.Quote(s.carts.Items(), s.offer, s.tip)
}

// PlaceOrderResult carries the payment outcome and, on success, the order
type PlaceOrderResult struct {
	Payment *payment.Result `json:"payment"`
	Order   *order.Order    `json:"order,omitempty"`
}

// PlaceOrder checks the business preconditions, awaits the simulated
// payment, and on success materializes the order and resets the checkout
// state. On payment failure the cart, coupon and selection are untouched.
func (s *Service) PlaceOrder(ctx context.Context, address order.Address, method string) (*PlaceOrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.carts.IsEmpty() {
		return nil, ErrEmptyCart
	}

	s.window() // a selection past its window must not reach payment

	date, slot, ok := s.selection.Chosen()
	if !ok {
		return nil, ErrNoDeliverySelection
	}

	quote := s.quote()

	result, err := s.payments.Process(ctx, quote.Total, method)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return &PlaceOrderResult{Payment: result}, nil
	}

	o := s.orders.Create(order.CreateInput{
		Address:       address,
		Date:          date,
		Slot:          slot,
		PaymentMethod: method,
		Quote:         quote,
	})

	s.offer = nil
	s.tip = 0
	s.selection.Reset()

	return &PlaceOrderResult{Payment: result, Order: &o}, nil
}
