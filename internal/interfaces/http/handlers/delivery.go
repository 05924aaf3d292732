// internal/interfaces/http/handlers/delivery.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/grocery-backend/internal/domain/checkout"
)

// DeliveryHandler handles delivery scheduling endpoints
type DeliveryHandler struct {
	checkout *checkout.Service
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(checkoutService *checkout.Service) *DeliveryHandler {
	return &DeliveryHandler{checkout: checkoutService}
}

// SelectDeliveryRequest chooses a date and slot
type SelectDeliveryRequest struct {
	DateID string `json:"date_id" binding:"required"`
	SlotID string `json:"slot_id" binding:"required"`
}

// GetDates handles GET /delivery/dates
func (h *DeliveryHandler) GetDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery dates retrieved successfully",
		"data": gin.H{
			"dates": h.checkout.Dates(),
		},
	})
}

// GetSlots handles GET /delivery/dates/:id/slots
func (h *DeliveryHandler) GetSlots(c *gin.Context) {
	slots, err := h.checkout.SlotsFor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery slots retrieved successfully",
		"data": gin.H{
			"slots": slots,
		},
	})
}

// SelectDelivery handles POST /delivery/select
func (h *DeliveryHandler) SelectDelivery(c *gin.Context) {
	var req SelectDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.checkout.SelectDelivery(req.DateID, req.SlotID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery slot selected successfully",
	})
}
