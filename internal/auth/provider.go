package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

// Provider performs the actual authentication exchange. It stands in
// for the backend auth service so the mock below can be swapped for a
// real client without touching the state machine.
type Provider interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, name, email, password, phone string) (*domain.User, error)
}

// mockLoginUserID is the fixed placeholder id assigned on login.
const mockLoginUserID = "123456"

// MockProvider simulates the auth backend: any email containing "@" is
// accepted after an artificial delay, and the password is never checked.
type MockProvider struct {
	loginDelay    time.Duration
	registerDelay time.Duration
}

// NewMockProvider creates a mock provider with the given simulated
// latencies.
func NewMockProvider(loginDelay, registerDelay time.Duration) *MockProvider {
	return &MockProvider{
		loginDelay:    loginDelay,
		registerDelay: registerDelay,
	}
}

// Login validates the email shape, waits out the simulated latency, and
// returns a user derived from the email local-part.
func (p *MockProvider) Login(ctx context.Context, email, _ string) (*domain.User, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}

	if err := wait(ctx, p.loginDelay); err != nil {
		return nil, err
	}

	local, _, _ := strings.Cut(email, "@")
	return &domain.User{
		ID:    mockLoginUserID,
		Name:  local,
		Email: email,
	}, nil
}

// Register validates the email shape, waits out the simulated latency,
// and returns a user with a generated id and the supplied profile.
func (p *MockProvider) Register(ctx context.Context, name, email, _, phone string) (*domain.User, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}

	if err := wait(ctx, p.registerDelay); err != nil {
		return nil, err
	}

	return &domain.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}

func checkEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	return nil
}

// wait sleeps for the given duration but aborts early when the context
// is cancelled, so simulated latency honors the caller's deadline.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
