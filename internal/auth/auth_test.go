package auth

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/kv"
	"storefront/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestState() (*State, kv.Store, *nav.Recorder) {
	store := kv.NewMemory()
	recorder := &nav.Recorder{}
	state := New(NewMockProvider(0, 0), store, recorder, zap.NewNop())
	return state, store, recorder
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	state, store, _ := newTestState()

	user, err := state.Login(ctx, "jane.doe@example.com", "whatever")
	require.NoError(t, err)

	assert.Equal(t, "123456", user.ID)
	assert.Equal(t, "jane.doe", user.Name)
	assert.Equal(t, "jane.doe@example.com", user.Email)

	assert.True(t, state.IsAuthenticated())
	assert.False(t, state.Loading())
	assert.Empty(t, state.LastError())

	// The user is persisted for the next session.
	stored, err := kv.Load[*domain.User](ctx, store, kv.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	ctx := context.Background()
	state, store, _ := newTestState()

	_, err := state.Login(ctx, "not-an-email", "whatever")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.False(t, state.IsAuthenticated())
	assert.False(t, state.Loading())
	assert.NotEmpty(t, state.LastError())

	_, err = kv.Load[*domain.User](ctx, store, kv.KeyUser)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestLoginClearsPreviousError(t *testing.T) {
	ctx := context.Background()
	state, _, _ := newTestState()

	_, err := state.Login(ctx, "bad", "pw")
	require.Error(t, err)
	require.NotEmpty(t, state.LastError())

	_, err = state.Login(ctx, "ok@example.com", "pw")
	require.NoError(t, err)
	assert.Empty(t, state.LastError())
}

func TestRegisterSuccess(t *testing.T) {
	ctx := context.Background()
	state, _, _ := newTestState()

	user, err := state.Register(ctx, "Jane Doe", "jane@example.com", "pw", "555-0100")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "123456", user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "555-0100", user.Phone)
	assert.True(t, state.IsAuthenticated())
}

func TestLogoutNavigatesToLogin(t *testing.T) {
	ctx := context.Background()
	state, store, recorder := newTestState()

	_, err := state.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, state.Logout(ctx))

	assert.False(t, state.IsAuthenticated())
	assert.Nil(t, state.User())
	assert.Equal(t, nav.RouteLogin, recorder.Last())

	_, err = kv.Load[*domain.User](ctx, store, kv.KeyUser)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestLoadRestoresStoredUser(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	stored := &domain.User{ID: "123456", Name: "jane", Email: "jane@example.com"}
	require.NoError(t, kv.Save(ctx, store, kv.KeyUser, stored))

	state := New(NewMockProvider(0, 0), store, nav.Nop{}, zap.NewNop())
	require.NoError(t, state.Load(ctx))

	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, stored, state.User())
}

func TestLoadDiscardsCorruptUser(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, kv.KeyUser, []byte("{nope")))

	state := New(NewMockProvider(0, 0), store, nav.Nop{}, zap.NewNop())
	require.NoError(t, state.Load(ctx))

	assert.False(t, state.IsAuthenticated())

	// The corrupt value is removed, not left to fail again next time.
	_, err := store.Get(ctx, kv.KeyUser)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	state := New(NewMockProvider(5*time.Second, 0), kv.NewMemory(), nav.Nop{}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := state.Login(ctx, "jane@example.com", "pw")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, state.IsAuthenticated())
}

func TestUserReturnsCopy(t *testing.T) {
	ctx := context.Background()
	state, _, _ := newTestState()

	_, err := state.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)

	first := state.User()
	first.Name = "mutated"

	assert.Equal(t, "jane", state.User().Name)
}
