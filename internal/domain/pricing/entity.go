// internal/domain/pricing/entity.go
package pricing

// DiscountKind represents how an offer's value is interpreted
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed_amount"
)

// Offer is a discount rule keyed by a redeemable code
type Offer struct {
	Code               string       `json:"code"`
	Kind               DiscountKind `json:"kind"`
	Value              float64      `json:"value"`            // Percent for percentage, paise for fixed
	MinimumOrderAmount int64        `json:"min_order_amount"` // In paise
	Description        string       `json:"description"`
}

// OutcomeStatus classifies a coupon validation result
type OutcomeStatus string

const (
	OutcomeApplied      OutcomeStatus = "applied"
	OutcomeBelowMinimum OutcomeStatus = "below_minimum"
	OutcomeInvalid      OutcomeStatus = "invalid"
)

// CouponOutcome is the typed result of validating a coupon code. Rejections
// are business outcomes, never errors.
type CouponOutcome struct {
	Status    OutcomeStatus `json:"status"`
	Code      string        `json:"code"`
	Offer     *Offer        `json:"offer,omitempty"`
	Discount  int64         `json:"discount,omitempty"`  // In paise, when applied
	Shortfall int64         `json:"shortfall,omitempty"` // In paise, when below minimum
	Message   string        `json:"message"`
}

// Applied reports whether the outcome carries a usable discount
func (o CouponOutcome) Applied() bool {
	return o.Status == OutcomeApplied
}

// Quote is the full pricing breakdown derived from a cart snapshot.
// All amounts are in paise.
type Quote struct {
	ItemCount      int   `json:"item_count"`
	TotalQuantity  int   `json:"total_quantity"`
	Subtotal       int64 `json:"subtotal"`
	Tax            int64 `json:"tax"`
	DeliveryFee    int64 `json:"delivery_fee"`
	HandlingCharge int64 `json:"handling_charge"`
	Tip            int64 `json:"tip"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`
}
