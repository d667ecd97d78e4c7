package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"streetcats-backend/internal/domains/auth"
	"streetcats-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepository struct {
	users map[string]*auth.User
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*auth.User, error) {
	if u, ok := f.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, auth.ErrUserNotFound
}

// fakeCache is an in-memory stand-in for Redis.
type fakeCache struct {
	entries    map[string]interface{}
	deleteFail error
	published  []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]interface{}{}}
}

func (f *fakeCache) Get(_ context.Context, key string, _ interface{}) (bool, error) {
	_, ok := f.entries[key]
	return ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	if f.deleteFail != nil {
		return f.deleteFail
	}
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func (f *fakeCache) Publish(_ context.Context, channel string, _ interface{}) error {
	f.published = append(f.published, channel)
	return nil
}

func (f *fakeCache) Subscribe(context.Context, string) (<-chan string, error) {
	out := make(chan string)
	close(out)
	return out, nil
}

func newTestService(t *testing.T, cache *fakeCache) (auth.Service, *auth.State) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeRepository{users: map[string]*auth.User{
		"admin@streetcats.id": {
			ID:           uuid.New(),
			Email:        "admin@streetcats.id",
			PasswordHash: string(hash),
			FullName:     "Admin",
			Role:         "admin",
			IsActive:     true,
		},
		"inactive@streetcats.id": {
			ID:           uuid.New(),
			Email:        "inactive@streetcats.id",
			PasswordHash: string(hash),
			Role:         "contributor",
			IsActive:     false,
		},
	}}

	state := auth.NewState()
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, cache, manager, state), state
}

func TestSignInSuccess(t *testing.T) {
	cache := newFakeCache()
	svc, state := newTestService(t, cache)

	result, err := svc.SignIn(context.Background(), &auth.LoginRequest{
		Email:    "admin@streetcats.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Session)

	assert.NotEmpty(t, result.Session.Token)
	assert.Equal(t, "admin", result.Session.Role)

	// Session is persisted under its revocation key.
	_, stored := cache.entries[sessionKeyPrefix+result.Session.ID]
	assert.True(t, stored)

	assert.True(t, state.SignedIn())
	assert.False(t, state.Loading(), "loading must clear after sign in")
	assert.Contains(t, cache.published, eventsChannel)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, state := newTestService(t, newFakeCache())

	_, err := svc.SignIn(context.Background(), &auth.LoginRequest{
		Email:    "admin@streetcats.id",
		Password: "salah",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.False(t, state.SignedIn())
	assert.False(t, state.Loading())
}

func TestSignInUnknownEmailAnswersLikeWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, newFakeCache())

	_, err := svc.SignIn(context.Background(), &auth.LoginRequest{
		Email:    "nobody@streetcats.id",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSignInInactiveAccount(t *testing.T) {
	svc, _ := newTestService(t, newFakeCache())

	_, err := svc.SignIn(context.Background(), &auth.LoginRequest{
		Email:    "inactive@streetcats.id",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestSignOutRevokesSession(t *testing.T) {
	cache := newFakeCache()
	svc, state := newTestService(t, cache)

	result, err := svc.SignIn(context.Background(), &auth.LoginRequest{
		Email:    "admin@streetcats.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background(), result.Session.ID))

	_, stored := cache.entries[sessionKeyPrefix+result.Session.ID]
	assert.False(t, stored, "session key must be gone after sign out")
	assert.False(t, state.SignedIn())
}

func TestSignOutClearsStateEvenWhenRevocationFails(t *testing.T) {
	cache := newFakeCache()
	svc, state := newTestService(t, cache)

	result, err := svc.SignIn(context.Background(), &auth.LoginRequest{
		Email:    "admin@streetcats.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)

	cache.deleteFail = errors.New("redis down")
	err = svc.SignOut(context.Background(), result.Session.ID)
	assert.Error(t, err)
	assert.False(t, state.SignedIn(), "local state clears no matter what")
}
