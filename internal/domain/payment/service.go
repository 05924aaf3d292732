// internal/domain/payment/service.go
package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/grocery-backend/internal/config"
)

// Service simulates the external payment gateway: a configurable delay
// followed by a probabilistic success flag. No money moves anywhere.
type Service struct {
	cfg    config.PaymentConfig
	mu     sync.Mutex // rand.Rand is not goroutine safe
	rng    *rand.Rand
	logger *logrus.Logger
}

// NewService creates a simulated payment service
func NewService(cfg config.PaymentConfig, logger *logrus.Logger) *Service {
	return &Service{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// Result is the outcome of a payment attempt
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Method        string `json:"method"`
	Amount        int64  `json:"amount"` // In paise
	Message       string `json:"message"`
}

// Process waits out the simulated gateway delay and resolves to success or
// failure per the configured rate. The context cancels the wait.
func (s *Service) Process(ctx context.Context, amount int64, method string) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.cfg.Delay):
	}

	result := &Result{
		Method: method,
		Amount: amount,
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll < s.cfg.SuccessRate {
		result.Success = true
		result.TransactionID = "txn_" + uuid.New().String()
		result.Message = "Payment successful"
	} else {
		result.Message = "Payment declined, please try again"
	}

	s.logger.WithFields(logrus.Fields{
		"method":  method,
		"amount":  amount,
		"success": result.Success,
	}).Info("Payment processed")

	return result, nil
}
