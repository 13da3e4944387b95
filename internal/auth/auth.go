// Package auth implements the authentication state machine. It has two
// states, anonymous and authenticated, with transitions driven by a
// Provider that simulates the auth backend.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/kv"
	"storefront/internal/nav"

	"go.uber.org/zap"
)

// State owns the current-user record. Login and register expose loading
// and last-error as observable state for the duration of the attempt;
// the error is cleared at the start of the next attempt.
type State struct {
	mu        sync.Mutex
	user      *domain.User
	loading   bool
	lastError string

	provider Provider
	store    kv.Store
	nav      nav.Navigator
	logger   *zap.Logger
}

// New creates an anonymous auth state.
func New(provider Provider, store kv.Store, navigator nav.Navigator, logger *zap.Logger) *State {
	return &State{
		provider: provider,
		store:    store,
		nav:      navigator,
		logger:   logger,
	}
}

// Load restores a previously stored user. An absent key leaves the
// state anonymous; a corrupt value is logged, deleted, and likewise
// leaves the state anonymous.
func (s *State) Load(ctx context.Context) error {
	user, err := kv.Load[*domain.User](ctx, s.store, kv.KeyUser)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		if errors.Is(err, kv.ErrCorrupt) {
			s.logger.Warn("Discarding corrupt stored user", zap.Error(err))
			if delErr := s.store.Delete(ctx, kv.KeyUser); delErr != nil {
				s.logger.Error("Failed to delete corrupt stored user", zap.Error(delErr))
			}
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

// Login authenticates with the provider and transitions to
// authenticated on success.
func (s *State) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.begin()

	user, err := s.provider.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	if err := s.establish(ctx, user); err != nil {
		s.fail(err)
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return user, nil
}

// Register creates an account with the provider and transitions to
// authenticated on success.
func (s *State) Register(ctx context.Context, name, email, password, phone string) (*domain.User, error) {
	s.begin()

	user, err := s.provider.Register(ctx, name, email, password, phone)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	if err := s.establish(ctx, user); err != nil {
		s.fail(err)
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return user, nil
}

// Logout clears the state, removes the stored user, and emits a
// navigation event to the login view.
func (s *State) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, kv.KeyUser); err != nil {
		return fmt.Errorf("failed to delete stored user: %w", err)
	}

	s.nav.Navigate(nav.RouteLogin)
	s.logger.Info("User logged out")
	return nil
}

// User returns the current user, or nil when anonymous.
func (s *State) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *State) IsAuthenticated() bool {
	return s.User() != nil
}

// Loading reports whether a login or registration attempt is in flight.
func (s *State) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failed attempt, or
// "" when the last attempt succeeded.
func (s *State) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *State) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastError = ""
}

func (s *State) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastError = err.Error()
}

func (s *State) establish(ctx context.Context, user *domain.User) error {
	if err := kv.Save(ctx, s.store, kv.KeyUser, user); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.loading = false
	return nil
}
