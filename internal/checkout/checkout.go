// Package checkout implements the four-step checkout wizard: cart,
// shipping, payment, review. The wizard is linear with no skipping;
// advancing and retreating are no-ops at the boundaries.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/kv"
	"storefront/internal/nav"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoAddressSelected = fmt.Errorf("%w: no address selected", domain.ErrValidation)
	ErrNoPaymentSelected = fmt.Errorf("%w: no payment method selected", domain.ErrValidation)

	ErrUnknownAddress       = errors.New("unknown address id")
	ErrUnknownPaymentMethod = errors.New("unknown payment method id")
)

// Checkout coordinates the wizard step, the address and payment method
// books, and order submission. Address and payment lists persist to the
// key-value store; the current step and selections are session state.
type Checkout struct {
	mu                sync.Mutex
	step              domain.CheckoutStep
	addresses         []domain.Address
	selectedAddressID string
	paymentMethods    []domain.PaymentMethod
	selectedPaymentID string
	processing        bool
	lastError         string

	cart   *cart.Cart
	orders OrderService
	store  kv.Store
	nav    nav.Navigator
	logger *zap.Logger
}

// New creates a checkout at the cart step with empty books.
func New(c *cart.Cart, orders OrderService, store kv.Store, navigator nav.Navigator, logger *zap.Logger) *Checkout {
	return &Checkout{
		step:           domain.StepCart,
		addresses:      []domain.Address{},
		paymentMethods: []domain.PaymentMethod{},
		cart:           c,
		orders:         orders,
		store:          store,
		nav:            navigator,
		logger:         logger,
	}
}

// Load restores the address and payment method books and pre-selects
// the default entry of each. Absent keys yield empty books; corrupt
// values are logged and yield empty books.
func (c *Checkout) Load(ctx context.Context) error {
	addresses, err := kv.Load[[]domain.Address](ctx, c.store, kv.KeyAddresses)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		if !errors.Is(err, kv.ErrCorrupt) {
			return fmt.Errorf("failed to load addresses: %w", err)
		}
		c.logger.Warn("Discarding corrupt stored addresses", zap.Error(err))
		addresses = nil
	}

	methods, err := kv.Load[[]domain.PaymentMethod](ctx, c.store, kv.KeyPaymentMethods)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		if !errors.Is(err, kv.ErrCorrupt) {
			return fmt.Errorf("failed to load payment methods: %w", err)
		}
		c.logger.Warn("Discarding corrupt stored payment methods", zap.Error(err))
		methods = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if addresses != nil {
		c.addresses = addresses
		for _, a := range addresses {
			if a.IsDefault {
				c.selectedAddressID = a.ID
				break
			}
		}
	}
	if methods != nil {
		c.paymentMethods = methods
		for _, m := range methods {
			if m.IsDefault {
				c.selectedPaymentID = m.ID
				break
			}
		}
	}
	return nil
}

// Step returns the current wizard step.
func (c *Checkout) Step() domain.CheckoutStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Advance moves to the next step. At review it is a no-op. Guard
// conditions (selected address past shipping, selected payment past
// payment) are enforced by the caller, not here.
func (c *Checkout) Advance() domain.CheckoutStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = c.step.Next()
	return c.step
}

// Retreat moves to the previous step. At cart it is a no-op.
func (c *Checkout) Retreat() domain.CheckoutStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = c.step.Prev()
	return c.step
}

// AddAddress assigns an id, appends the address to the book, and
// persists it. The first address is selected automatically. At most one
// address keeps the default flag: marking a new entry default clears it
// on all others.
func (c *Checkout) AddAddress(ctx context.Context, address domain.Address) (domain.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	address.ID = uuid.New().String()
	if address.IsDefault {
		for i := range c.addresses {
			c.addresses[i].IsDefault = false
		}
	}

	wasEmpty := len(c.addresses) == 0
	c.addresses = append(c.addresses, address)

	if err := kv.Save(ctx, c.store, kv.KeyAddresses, c.addresses); err != nil {
		return domain.Address{}, fmt.Errorf("failed to persist addresses: %w", err)
	}

	if wasEmpty {
		c.selectedAddressID = address.ID
	}
	return address, nil
}

// SelectAddress marks the given address as the shipping target.
func (c *Checkout) SelectAddress(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, a := range c.addresses {
		if a.ID == id {
			c.selectedAddressID = id
			return nil
		}
	}
	return ErrUnknownAddress
}

// AddPaymentMethod assigns an id, retains only the last four digits of
// the card number, appends the method, and persists it. The first
// method is selected automatically; the default flag stays unique.
func (c *Checkout) AddPaymentMethod(ctx context.Context, method domain.PaymentMethod) (domain.PaymentMethod, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	method.ID = uuid.New().String()
	method.CardNumber = lastFourDigits(method.CardNumber)
	if method.IsDefault {
		for i := range c.paymentMethods {
			c.paymentMethods[i].IsDefault = false
		}
	}

	wasEmpty := len(c.paymentMethods) == 0
	c.paymentMethods = append(c.paymentMethods, method)

	if err := kv.Save(ctx, c.store, kv.KeyPaymentMethods, c.paymentMethods); err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("failed to persist payment methods: %w", err)
	}

	if wasEmpty {
		c.selectedPaymentID = method.ID
	}
	return method, nil
}

// SelectPaymentMethod marks the given method for payment.
func (c *Checkout) SelectPaymentMethod(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.paymentMethods {
		if m.ID == id {
			c.selectedPaymentID = id
			return nil
		}
	}
	return ErrUnknownPaymentMethod
}

// Addresses returns the address book.
func (c *Checkout) Addresses() []domain.Address {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// PaymentMethods returns the stored payment methods.
func (c *Checkout) PaymentMethods() []domain.PaymentMethod {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.PaymentMethod, len(c.paymentMethods))
	copy(out, c.paymentMethods)
	return out
}

// SelectedAddressID returns the selected address id, or "" when none.
func (c *Checkout) SelectedAddressID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedAddressID
}

// SelectedPaymentID returns the selected payment method id, or "" when
// none.
func (c *Checkout) SelectedPaymentID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedPaymentID
}

// Processing reports whether an order submission is in flight.
func (c *Checkout) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

// LastError returns the message of the most recent failed order
// attempt, or "" when the last attempt succeeded.
func (c *Checkout) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// PlaceOrder validates the selections, submits the order, and on
// success empties the cart, resets the wizard to the cart step, and
// emits a navigation event to the confirmation view. On a validation
// failure the step and the cart are left untouched.
func (c *Checkout) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	c.mu.Lock()
	c.processing = true
	c.lastError = ""

	address, ok := c.selectedAddress()
	if !ok {
		c.processing = false
		c.lastError = ErrNoAddressSelected.Error()
		c.mu.Unlock()
		return nil, ErrNoAddressSelected
	}

	method, ok := c.selectedPayment()
	if !ok {
		c.processing = false
		c.lastError = ErrNoPaymentSelected.Error()
		c.mu.Unlock()
		return nil, ErrNoPaymentSelected
	}
	c.mu.Unlock()

	order := domain.Order{
		Items:         c.cart.Items(),
		Subtotal:      c.cart.Subtotal(),
		Address:       address,
		PaymentMethod: method,
		PlacedAt:      time.Now().UTC(),
	}

	id, err := c.orders.Place(ctx, order)
	if err != nil {
		c.mu.Lock()
		c.processing = false
		c.lastError = err.Error()
		c.mu.Unlock()
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	order.ID = id

	if err := c.cart.Clear(ctx); err != nil {
		c.mu.Lock()
		c.processing = false
		c.lastError = err.Error()
		c.mu.Unlock()
		return nil, fmt.Errorf("failed to clear cart after order: %w", err)
	}

	c.mu.Lock()
	c.step = domain.StepCart
	c.processing = false
	c.mu.Unlock()

	c.nav.Navigate(nav.RouteOrderSuccess)
	c.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Float64("subtotal", order.Subtotal),
	)
	return &order, nil
}

// selectedAddress resolves the selected address. Callers must hold the
// mutex.
func (c *Checkout) selectedAddress() (domain.Address, bool) {
	if c.selectedAddressID == "" {
		return domain.Address{}, false
	}
	for _, a := range c.addresses {
		if a.ID == c.selectedAddressID {
			return a, true
		}
	}
	return domain.Address{}, false
}

// selectedPayment resolves the selected payment method. Callers must
// hold the mutex.
func (c *Checkout) selectedPayment() (domain.PaymentMethod, bool) {
	if c.selectedPaymentID == "" {
		return domain.PaymentMethod{}, false
	}
	for _, m := range c.paymentMethods {
		if m.ID == c.selectedPaymentID {
			return m, true
		}
	}
	return domain.PaymentMethod{}, false
}

// lastFourDigits strips non-digits and keeps the final four.
func lastFourDigits(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, cardNumber)

	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
