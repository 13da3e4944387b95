package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/auth"
	"storefront/internal/kv"
	custommiddleware "storefront/internal/middleware"
	"storefront/internal/nav"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthRouter(t *testing.T) (*chi.Mux, *session.Registry) {
	t.Helper()

	logger := zap.NewNop()
	sessions := session.NewRegistry()
	state := auth.New(auth.NewMockProvider(0, 0), kv.NewMemory(), nav.Nop{}, logger)

	router := chi.NewRouter()
	NewAuthHandler(state, sessions, logger).RegisterRoutes(
		router,
		custommiddleware.SessionAuth(sessions, logger),
	)
	return router, sessions
}

func TestLoginIssuesSessionToken(t *testing.T) {
	router, sessions := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"jane.doe@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "123456", resp.User.ID)
	assert.Equal(t, "jane.doe", resp.User.Name)
	require.NotEmpty(t, resp.Token)

	userID, ok := sessions.Resolve(resp.Token)
	require.True(t, ok)
	assert.Equal(t, "123456", userID)
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"not-an-email","password":"pw"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLoginRequiresFields(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"a@b.c"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterCreatesDistinctUser(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"pw","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.User.ID)
	assert.NotEqual(t, "123456", resp.User.ID)
	assert.Equal(t, "Jane Doe", resp.User.Name)
	assert.Equal(t, "555-0100", resp.User.Phone)
	assert.NotEmpty(t, resp.Token)
}

func TestProfileAndLogoutFlow(t *testing.T) {
	router, sessions := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Profile requires the bearer token.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Logout revokes the token.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	_, ok := sessions.Resolve(resp.Token)
	assert.False(t, ok)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
