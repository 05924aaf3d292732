package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/grocery-backend/internal/config"
	"github.com/your-org/grocery-backend/internal/domain/cart"
	"github.com/your-org/grocery-backend/internal/domain/checkout"
	"github.com/your-org/grocery-backend/internal/domain/order"
	"github.com/your-org/grocery-backend/internal/domain/payment"
	"github.com/your-org/grocery-backend/internal/domain/pricing"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Pricing: config.PricingConfig{
			TaxRatePercent:        8.0,
			DeliveryFee:           4000,
			FreeDeliveryThreshold: 50000,
			HandlingCharge:        900,
			TipPresets:            []int64{1000, 2000, 3000},
		},
		Delivery: config.DeliveryConfig{WindowDays: 7},
		Payment:  config.PaymentConfig{SuccessRate: 1.0, Delay: 0},
	}

	cartStore := cart.NewStore(logger)
	engine := pricing.NewEngine(cfg.Pricing)
	payments := payment.NewService(cfg.Payment, logger)
	orders := order.NewService(cartStore, logger)
	checkoutService := checkout.NewService(cfg, cartStore, engine, payments, orders, logger)

	router := gin.New()
	SetupRoutes(router.Group("/api/v1"), Services{
		Cart:     cartStore,
		Checkout: checkoutService,
		Orders:   orders,
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func addProduct(t *testing.T, router *gin.Engine, id string, pricePaise int64, qty int) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product":  gin.H{"id": id, "name": "Item " + id, "price": pricePaise, "unit": "1 pc"},
		"quantity": qty,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCartEndpoints(t *testing.T) {
	router := newTestRouter(t)

	addProduct(t, router, "p1", 12000, 2)
	addProduct(t, router, "p1", 12000, 3)

	w := doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	items := data["items"].([]any)
	require.Len(t, items, 1, "duplicate adds must merge into one line")

	line := items[0].(map[string]any)
	assert.Equal(t, float64(5), line["quantity"])
	assert.Equal(t, 120.0, line["unit_price"], "paise converted at the boundary")

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(5), decodeData(t, w)["count"])

	w = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/p1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, decodeData(t, w)["items"])
}

func TestCouponEndpoint_BelowMinimum(t *testing.T) {
	router := newTestRouter(t)
	addProduct(t, router, "p1", 30000, 1)

	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout/coupon", gin.H{"code": "MON20"})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, string(pricing.OutcomeBelowMinimum), data["status"])
	assert.Equal(t, 700.0, data["shortfall"], "₹1000 minimum less ₹300 subtotal")
}

func TestPlaceOrderFlow(t *testing.T) {
	router := newTestRouter(t)
	addProduct(t, router, "p1", 120000, 1)

	// Pick tomorrow's first slot
	w := doJSON(t, router, http.MethodGet, "/api/v1/delivery/dates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dates := decodeData(t, w)["dates"].([]any)
	require.Len(t, dates, 7)
	dateID := dates[1].(map[string]any)["id"].(string)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/delivery/dates/%s/slots", dateID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	slots := decodeData(t, w)["slots"].([]any)
	require.Len(t, slots, 6)
	slotID := slots[0].(map[string]any)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/delivery/select", gin.H{
		"date_id": dateID,
		"slot_id": slotID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/place-order", gin.H{
		"address": gin.H{
			"name": "Asha", "phone": "9999999999", "line1": "12 Market Road",
			"city": "Pune", "state": "MH", "postal_code": "411001",
		},
		"payment_method": "upi",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	placed := decodeData(t, w)["order"].(map[string]any)
	assert.Equal(t, string(order.StatusRequested), placed["status"])
	assert.Equal(t, 1200.0, placed["subtotal"])

	// Cart was cleared by the checkout
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(0), decodeData(t, w)["count"])

	// And the order shows up in history
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders?status=requested", nil)
	orders := decodeData(t, w)["orders"].([]any)
	require.Len(t, orders, 1)
}

func TestPlaceOrder_PreconditionsRejected(t *testing.T) {
	router := newTestRouter(t)

	body := gin.H{
		"address":        gin.H{"name": "Asha"},
		"payment_method": "cod",
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout/place-order", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart must be refused")

	addProduct(t, router, "p1", 10000, 1)
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/place-order", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing delivery selection must be refused")
}

func TestOrderStatusUpdate(t *testing.T) {
	router := newTestRouter(t)
	addProduct(t, router, "p1", 120000, 1)

	w := doJSON(t, router, http.MethodGet, "/api/v1/delivery/dates", nil)
	dateID := decodeData(t, w)["dates"].([]any)[0].(map[string]any)["id"].(string)
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/delivery/dates/%s/slots", dateID), nil)
	slotID := decodeData(t, w)["slots"].([]any)[0].(map[string]any)["id"].(string)
	doJSON(t, router, http.MethodPost, "/api/v1/delivery/select", gin.H{"date_id": dateID, "slot_id": slotID})

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout/place-order", gin.H{
		"address":        gin.H{"name": "Asha"},
		"payment_method": "cod",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := decodeData(t, w)["order"].(map[string]any)["id"].(string)

	w = doJSON(t, router, http.MethodPut, "/api/v1/orders/"+orderID+"/status", gin.H{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/orders/"+orderID+"/status", gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown status must be rejected")
}
