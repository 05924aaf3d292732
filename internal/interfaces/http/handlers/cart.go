// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/checkout"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store    *cart.Store
	checkout *checkout.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *cart.Store, checkoutService *checkout.Service) *CartHandler {
	return &CartHandler{
		store:    store,
		checkout: checkoutService,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	Product  cart.ProductInput `json:"product" binding:"required"`
	Quantity int               `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a quantity update. Zero removes the line.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":  toLineItemDTOs(h.store.Items()),
			"totals": toQuoteDTO(h.checkout.Summary()),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.AddItem(req.Product, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"items":  toLineItemDTOs(h.store.Items()),
			"totals": toQuoteDTO(h.checkout.Summary()),
		},
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.SetQuantity(c.Param("id"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data": gin.H{
			"items":  toLineItemDTOs(h.store.Items()),
			"totals": toQuoteDTO(h.checkout.Summary()),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.store.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data": gin.H{
			"items":  toLineItemDTOs(h.store.Items()),
			"totals": toQuoteDTO(h.checkout.Summary()),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.store.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.store.TotalQuantity(),
		},
	})
}
