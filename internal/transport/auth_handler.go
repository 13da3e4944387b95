package transport

import (
	"errors"
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
}

// AuthResponse carries the session token and profile returned by login
// and registration.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	state    *auth.State
	sessions *session.Registry
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(state *auth.State, sessions *session.Registry, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		state:    state,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterRoutes registers all auth routes.
func (h *AuthHandler) RegisterRoutes(r chi.Router, sessionAuth func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		// Public routes
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)

		// Session-protected routes
		r.Group(func(r chi.Router) {
			r.Use(sessionAuth)
			r.Post("/logout", h.Logout)
			r.Get("/profile", h.Profile)
		})
	})
}

// Login handles the mock sign-in flow.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.state.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Login failed", zap.Error(err))

		if errors.Is(err, domain.ErrValidation) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token: h.sessions.Issue(user.ID),
		User:  *user,
	})
}

// Register handles the mock registration flow.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Registration validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.state.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		h.logger.Debug("Registration failed", zap.Error(err))

		if errors.Is(err, domain.ErrValidation) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, AuthResponse{
		Token: h.sessions.Issue(user.ID),
		User:  *user,
	})
}

// Logout revokes the session and clears the auth state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := bearerToken(r); ok {
		h.sessions.Revoke(token)
	}

	if err := h.state.Logout(r.Context()); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to logout")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// Profile returns the signed-in user.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := h.state.User()
	if user == nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}
