// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/grocery-backend/internal/domain/checkout"
	"github.com/your-org/grocery-backend/internal/domain/order"
	"github.com/your-org/grocery-backend/internal/domain/pricing"
	"github.com/your-org/grocery-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService}
}

// ApplyCouponRequest represents a coupon application request
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// SetTipRequest selects either a configured preset or a custom amount
type SetTipRequest struct {
	PresetIndex *int   `json:"preset_index,omitempty"`
	Custom      string `json:"custom,omitempty"`
}

// PlaceOrderRequest represents the final checkout submission
type PlaceOrderRequest struct {
	Address       order.Address `json:"address" binding:"required"`
	PaymentMethod string        `json:"payment_method" binding:"required"`
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	response := gin.H{
		"totals": toQuoteDTO(h.checkout.Summary()),
	}
	if offer := h.checkout.AppliedOffer(); offer != nil {
		response["applied_coupon"] = offer
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    response,
	})
}

// ApplyCoupon handles POST /checkout/coupon
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	outcome := h.checkout.ApplyCoupon(req.Code)
	middleware.RecordCheckoutOperation("apply_coupon", outcome.Applied())

	response := gin.H{
		"status":  outcome.Status,
		"message": outcome.Message,
		"coupon":  outcome.Code,
	}
	switch outcome.Status {
	case pricing.OutcomeApplied:
		response["discount"] = money(outcome.Discount)
		response["totals"] = toQuoteDTO(h.checkout.Summary())
	case pricing.OutcomeBelowMinimum:
		response["shortfall"] = money(outcome.Shortfall)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon processed",
		"data":    response,
	})
}

// RemoveCoupon handles DELETE /checkout/coupon
func (h *CheckoutHandler) RemoveCoupon(c *gin.Context) {
	h.checkout.RemoveCoupon()

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon removed successfully",
		"data": gin.H{
			"totals": toQuoteDTO(h.checkout.Summary()),
		},
	})
}

// SetTip handles POST /checkout/tip
func (h *CheckoutHandler) SetTip(c *gin.Context) {
	var req SetTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.PresetIndex != nil {
		h.checkout.SetTipPreset(*req.PresetIndex)
	} else {
		h.checkout.SetTipCustom(req.Custom)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tip updated successfully",
		"data": gin.H{
			"totals": toQuoteDTO(h.checkout.Summary()),
		},
	})
}

// PlaceOrder handles POST /checkout/place-order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkout.PlaceOrder(c.Request.Context(), req.Address, req.PaymentMethod)
	if err != nil {
		middleware.RecordCheckoutOperation("place_order", false)

		if errors.Is(err, checkout.ErrEmptyCart) || errors.Is(err, checkout.ErrNoDeliverySelection) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	if !result.Payment.Success {
		middleware.RecordCheckoutOperation("place_order", false)
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": result.Payment.Message,
			"data": gin.H{
				"payment": result.Payment,
			},
		})
		return
	}

	middleware.RecordCheckoutOperation("place_order", true)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"payment": result.Payment,
			"order":   toOrderDTO(*result.Order),
		},
	})
}
