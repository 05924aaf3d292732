// internal/domain/pricing/engine.go
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/your-org/grocery-backend/internal/config"
	"github.com/your-org/grocery-backend/internal/domain/cart"
)

// Engine derives pricing from a cart snapshot. It holds no mutable state;
// every method is a pure function of its inputs and the configured constants.
type Engine struct {
	cfg config.PricingConfig
}

// NewEngine creates a pricing engine
func NewEngine(cfg config.PricingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Subtotal sums unit price times quantity over the snapshot
func (e *Engine) Subtotal(items []cart.LineItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.TotalPrice()
	}
	return subtotal
}

// Tax applies the configured rate, rounded to the nearest paisa
func (e *Engine) Tax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * e.cfg.TaxRatePercent / 100))
}

// DeliveryFee is waived at or above the free-delivery threshold
func (e *Engine) DeliveryFee(subtotal int64) int64 {
	if subtotal >= e.cfg.FreeDeliveryThreshold {
		return 0
	}
	return e.cfg.DeliveryFee
}

// TipPreset returns the configured preset amount for the given index,
// or 0 when the index is out of range
func (e *Engine) TipPreset(index int) int64 {
	if index < 0 || index >= len(e.cfg.TipPresets) {
		return 0
	}
	return e.cfg.TipPresets[index]
}

// ParseCustomTip converts a user-entered tip in display units to paise.
// Blank or non-numeric input resolves to 0, never to an error.
func ParseCustomTip(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return 0
	}

	return int64(math.Round(amount * 100))
}

// ValidateCoupon normalizes the code and resolves it against the offer
// tables. Lookup order: the universal code, today's weekday offer, then
// every other weekday's offer. The first code match decides the rule, so a
// day's code is redeemable off-day under that day's terms.
func (e *Engine) ValidateCoupon(code string, subtotal int64, now time.Time) CouponOutcome {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return CouponOutcome{
			Status:  OutcomeInvalid,
			Message: "Please enter a coupon code",
		}
	}

	if normalized == UniversalOffer.Code {
		return e.resolve(UniversalOffer, subtotal)
	}

	today := now.Weekday()
	if offer, ok := DailyOffers[today]; ok && offer.Code == normalized {
		return e.resolve(offer, subtotal)
	}

	for _, day := range weekdayOrder {
		if day == today {
			continue
		}
		if offer, ok := DailyOffers[day]; ok && offer.Code == normalized {
			return e.resolve(offer, subtotal)
		}
	}

	return CouponOutcome{
		Status:  OutcomeInvalid,
		Code:    normalized,
		Message: "Invalid coupon code",
	}
}

// Discount computes the discount an offer yields on a subtotal, clamped so
// it can never exceed the subtotal itself
func (e *Engine) Discount(offer Offer, subtotal int64) int64 {
	var discount int64
	if offer.Kind == DiscountPercentage {
		discount = int64(math.Round(float64(subtotal) * offer.Value / 100))
	} else {
		discount = int64(offer.Value)
	}

	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// Quote composes the full pricing breakdown for a cart snapshot, an
// optional applied offer, and a tip amount. An empty cart quotes zero
// across the board; fees never apply to nothing.
func (e *Engine) Quote(items []cart.LineItem, offer *Offer, tip int64) Quote {
	if len(items) == 0 {
		return Quote{}
	}

	quote := Quote{
		ItemCount: len(items),
		Subtotal:  e.Subtotal(items),
		Tip:       tip,
	}
	for _, item := range items {
		quote.TotalQuantity += item.Quantity
	}

	quote.Tax = e.Tax(quote.Subtotal)
	quote.DeliveryFee = e.DeliveryFee(quote.Subtotal)
	quote.HandlingCharge = e.cfg.HandlingCharge

	if offer != nil {
		quote.Discount = e.Discount(*offer, quote.Subtotal)
	}

	total := quote.Subtotal + quote.Tax + quote.DeliveryFee + quote.HandlingCharge + quote.Tip - quote.Discount
	if total < 0 {
		total = 0
	}
	quote.Total = total

	return quote
}

func (e *Engine) resolve(offer Offer, subtotal int64) CouponOutcome {
	if subtotal < offer.MinimumOrderAmount {
		shortfall := offer.MinimumOrderAmount - subtotal
		return CouponOutcome{
			Status:    OutcomeBelowMinimum,
			Code:      offer.Code,
			Offer:     &offer,
			Shortfall: shortfall,
			Message:   fmt.Sprintf("Add ₹%.2f more to use this coupon", float64(shortfall)/100),
		}
	}

	discount := e.Discount(offer, subtotal)
	return CouponOutcome{
		Status:   OutcomeApplied,
		Code:     offer.Code,
		Offer:    &offer,
		Discount: discount,
		Message:  fmt.Sprintf("Coupon applied! You saved ₹%.2f", float64(discount)/100),
	}
}
