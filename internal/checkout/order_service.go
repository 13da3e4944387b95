package checkout

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

// OrderService submits an order for processing and returns its display
// id. It stands in for the backend order service so the mock below can
// be swapped for a real client without touching the wizard.
type OrderService interface {
	Place(ctx context.Context, order domain.Order) (string, error)
}

// MockOrderService simulates order processing: a fixed artificial delay
// followed by an unconditional success with a client-generated display
// id. No payment authorization or inventory decrement happens.
type MockOrderService struct {
	delay time.Duration
}

// NewMockOrderService creates a mock order service with the given
// simulated latency.
func NewMockOrderService(delay time.Duration) *MockOrderService {
	return &MockOrderService{delay: delay}
}

// Place waits out the simulated latency and returns a generated order
// id, honoring context cancellation.
func (s *MockOrderService) Place(ctx context.Context, _ domain.Order) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return newOrderID(), nil
}

// newOrderID produces a short display id like ORD-1A2B3C4D.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "ORD-" + suffix
}
