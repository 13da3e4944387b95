package transport

import (
	"errors"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/domain"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddAddressRequest represents a new shipping address.
type AddAddressRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country" validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

// AddPaymentMethodRequest represents a new card.
type AddPaymentMethodRequest struct {
	Type        string `json:"type" validate:"required,oneof=credit debit"`
	CardNumber  string `json:"cardNumber" validate:"required,min=4"`
	CardHolder  string `json:"cardHolder" validate:"required"`
	ExpiryMonth string `json:"expiryMonth" validate:"required"`
	ExpiryYear  string `json:"expiryYear" validate:"required"`
	IsDefault   bool   `json:"isDefault"`
}

// CheckoutResponse is the wizard view consumed by the checkout pages.
type CheckoutResponse struct {
	Step              domain.CheckoutStep    `json:"step"`
	Addresses         []domain.Address       `json:"addresses"`
	SelectedAddressID string                 `json:"selectedAddressId,omitempty"`
	PaymentMethods    []domain.PaymentMethod `json:"paymentMethods"`
	SelectedPaymentID string                 `json:"selectedPaymentId,omitempty"`
	Processing        bool                   `json:"processing"`
	Error             string                 `json:"error,omitempty"`
}

// CheckoutHandler handles HTTP requests for the checkout wizard.
type CheckoutHandler struct {
	checkout *checkout.Checkout
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(c *checkout.Checkout, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: c, logger: logger}
}

// RegisterRoutes registers all checkout routes.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/advance", h.Advance)
		r.Post("/retreat", h.Retreat)
		r.Post("/addresses", h.AddAddress)
		r.Put("/addresses/{id}/select", h.SelectAddress)
		r.Post("/payment-methods", h.AddPaymentMethod)
		r.Put("/payment-methods/{id}/select", h.SelectPaymentMethod)
		r.Post("/order", h.PlaceOrder)
	})
}

// Get returns the wizard state.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondWithCheckout(w)
}

// Advance moves to the next step, enforcing the guard conditions:
// leaving shipping requires a selected address, leaving payment a
// selected payment method.
func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	switch h.checkout.Step() {
	case domain.StepShipping:
		if h.checkout.SelectedAddressID() == "" {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "select a shipping address first")
			return
		}
	case domain.StepPayment:
		if h.checkout.SelectedPaymentID() == "" {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "select a payment method first")
			return
		}
	}

	h.checkout.Advance()
	h.respondWithCheckout(w)
}

// Retreat moves to the previous step.
func (h *CheckoutHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.checkout.Retreat()
	h.respondWithCheckout(w)
}

// AddAddress appends a shipping address to the book.
func (h *CheckoutHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req AddAddressRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add address validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	address, err := h.checkout.AddAddress(r.Context(), domain.Address{
		Name:      req.Name,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		h.logger.Error("Failed to add address", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add address")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, address)
}

// SelectAddress marks the given address for shipping.
func (h *CheckoutHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.checkout.SelectAddress(chi.URLParam(r, "id")); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "address not found")
		return
	}

	h.respondWithCheckout(w)
}

// AddPaymentMethod appends a card to the stored methods.
func (h *CheckoutHandler) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req AddPaymentMethodRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add payment method validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method, err := h.checkout.AddPaymentMethod(r.Context(), domain.PaymentMethod{
		Type:        domain.PaymentType(req.Type),
		CardNumber:  req.CardNumber,
		CardHolder:  req.CardHolder,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		h.logger.Error("Failed to add payment method", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add payment method")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, method)
}

// SelectPaymentMethod marks the given card for payment.
func (h *CheckoutHandler) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := h.checkout.SelectPaymentMethod(chi.URLParam(r, "id")); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "payment method not found")
		return
	}

	h.respondWithCheckout(w)
}

// PlaceOrder submits the order. A missing selection is a validation
// failure that leaves the wizard and the cart untouched.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.PlaceOrder(r.Context())
	if err != nil {
		h.logger.Debug("Order placement failed", zap.Error(err))

		if errors.Is(err, domain.ErrValidation) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

func (h *CheckoutHandler) respondWithCheckout(w http.ResponseWriter) {
	middleware.RespondWithJSON(w, http.StatusOK, CheckoutResponse{
		Step:              h.checkout.Step(),
		Addresses:         h.checkout.Addresses(),
		SelectedAddressID: h.checkout.SelectedAddressID(),
		PaymentMethods:    h.checkout.PaymentMethods(),
		SelectedPaymentID: h.checkout.SelectedPaymentID(),
		Processing:        h.checkout.Processing(),
		Error:             h.checkout.LastError(),
	})
}
