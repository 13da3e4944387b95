package domain

import "time"

// Address is a shipping address in the customer's address book.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// PaymentType distinguishes credit from debit cards.
type PaymentType string

const (
	PaymentTypeCredit PaymentType = "credit"
	PaymentTypeDebit  PaymentType = "debit"
)

// PaymentMethod is a stored card. Only the last four digits of the card
// number are ever retained.
type PaymentMethod struct {
	ID          string      `json:"id"`
	Type        PaymentType `json:"type"`
	CardNumber  string      `json:"cardNumber"`
	CardHolder  string      `json:"cardHolder"`
	ExpiryMonth string      `json:"expiryMonth"`
	ExpiryYear  string      `json:"expiryYear"`
	IsDefault   bool        `json:"isDefault,omitempty"`
}

// CheckoutStep is one of the four linear checkout wizard steps.
type CheckoutStep string

const (
	StepCart     CheckoutStep = "cart"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepReview   CheckoutStep = "review"
)

var checkoutSteps = []CheckoutStep{StepCart, StepShipping, StepPayment, StepReview}

// Index returns the zero-based position of the step in the wizard, or -1
// for an unknown step.
func (s CheckoutStep) Index() int {
	for i, step := range checkoutSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the following step, clamped at review.
func (s CheckoutStep) Next() CheckoutStep {
	i := s.Index()
	if i < 0 || i >= len(checkoutSteps)-1 {
		return s
	}
	return checkoutSteps[i+1]
}

// Prev returns the preceding step, clamped at cart.
func (s CheckoutStep) Prev() CheckoutStep {
	i := s.Index()
	if i <= 0 {
		return s
	}
	return checkoutSteps[i-1]
}

// Valid reports whether the step is one of the four wizard steps.
func (s CheckoutStep) Valid() bool {
	return s.Index() >= 0
}

// Order is the confirmation snapshot produced by a successful order
// placement. Orders are not persisted anywhere; the snapshot only feeds
// the confirmation view.
type Order struct {
	ID            string        `json:"id"`
	Items         []CartItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PlacedAt      time.Time     `json:"placedAt"`
}
