// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/checkout"
	"github.com/your-org/grocery-backend/internal/domain/order"
	"github.com/your-org/grocery-backend/internal/interfaces/http/handlers"
)

// Services bundles the domain services the route tree depends on
type Services struct {
	Cart     *cart.Store
	Checkout *checkout.Service
	Orders   *order.Service
}

// SetupRoutes configures all API routes
func SetupRoutes(api *gin.RouterGroup, svc Services) {
	cartHandler := handlers.NewCartHandler(svc.Cart, svc.Checkout)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout)
	deliveryHandler := handlers.NewDeliveryHandler(svc.Checkout)
	orderHandler := handlers.NewOrderHandler(svc.Orders)

	// Cart routes
	cartRoutes := api.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}

	// Checkout routes
	checkoutRoutes := api.Group("/checkout")
	{
		checkoutRoutes.GET("/summary", checkoutHandler.GetSummary)
		checkoutRoutes.POST("/coupon", checkoutHandler.ApplyCoupon)
		checkoutRoutes.DELETE("/coupon", checkoutHandler.RemoveCoupon)
		checkoutRoutes.POST("/tip", checkoutHandler.SetTip)
		checkoutRoutes.POST("/place-order", checkoutHandler.PlaceOrder)
	}

	// Delivery scheduling routes
	deliveryRoutes := api.Group("/delivery")
	{
		deliveryRoutes.GET("/dates", deliveryHandler.GetDates)
		deliveryRoutes.GET("/dates/:id/slots", deliveryHandler.GetSlots)
		deliveryRoutes.POST("/select", deliveryHandler.SelectDelivery)
	}

	// Order history routes
	orderRoutes := api.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.ListOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrder)
		orderRoutes.PUT("/:id/status", orderHandler.UpdateStatus)
	}
}
