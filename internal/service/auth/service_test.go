package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/infra/storage"
)

type fakeStore struct {
	users      map[string]*domain.User
	getErr     error
	createErr  error
	lastHash   string
	nextUserID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*domain.User{}, nextUserID: 1}
}

func (f *fakeStore) GetActiveUser(_ context.Context, username string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) CreateUser(_ context.Context, username, passwordHash string) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastHash = passwordHash
	u := &domain.User{ID: f.nextUserID, Username: username, PasswordHash: passwordHash, Active: true}
	f.nextUserID++
	f.users[username] = u
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedUser(t *testing.T, store *fakeStore, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	store.users[username] = &domain.User{ID: 1, Username: username, PasswordHash: string(hash), Active: true}
}

func TestAuthenticate(t *testing.T) {
	store := newFakeStore()
	seedUser(t, store, "admin", "s3cret")
	svc := NewService(store, nopLogger{})

	u, err := svc.Authenticate(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := newFakeStore()
	seedUser(t, store, "admin", "s3cret")
	svc := NewService(store, nopLogger{})

	_, err := svc.Authenticate(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewService(newFakeStore(), nopLogger{})

	_, err := svc.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateStorageError(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	svc := NewService(store, nopLogger{})

	_, err := svc.Authenticate(context.Background(), "admin", "s3cret")
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nopLogger{})

	u, err := svc.CreateUser(context.Background(), "novo", "senha123")
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.NotEqual(t, "senha123", store.lastHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.lastHash), []byte("senha123")))
}

func TestEnsureDefaultAdminSeeds(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nopLogger{})

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	require.Contains(t, store.users, DefaultAdminUser)

	// Second call is a no-op.
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background()))
	assert.Len(t, store.users, 1)
}
