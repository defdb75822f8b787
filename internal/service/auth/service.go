// Package auth verifies operator credentials for the administrative tool.
// Passwords are stored as bcrypt hashes; the plain text never reaches the
// storage layer.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/infra/storage"
)

// Default bootstrap account, created on first init when no admin exists.
// The password must be changed right after the first login.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin"
)

type Service struct {
	store  Store
	logger Logger
}

func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Authenticate checks username and password against the stored hash. Every
// failure mode returns ErrInvalidCredentials so probing cannot distinguish
// unknown users from wrong passwords.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.store.GetActiveUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown or inactive user %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: storage error for user %q: %v", username, err)
		return nil, fmt.Errorf("%w: Authenticate - lookup: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Authenticate: password mismatch for user %q", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: user %q authenticated", username)
	return user, nil
}

// CreateUser hashes the password and stores a new active operator account.
func (s *Service) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - hash: %v", ErrInternal, err)
	}

	user, err := s.store.CreateUser(ctx, username, string(hash))
	if err != nil {
		s.logger.Error("CreateUser: storage error for user %q: %v", username, err)
		return nil, fmt.Errorf("%w: CreateUser - insert: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUser: user %q created with id=%d", username, user.ID)
	return user, nil
}

// EnsureDefaultAdmin seeds the bootstrap admin account when none exists.
// Called from the init paths, never from request handling.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.store.GetActiveUser(ctx, DefaultAdminUser)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("%w: EnsureDefaultAdmin - lookup: %v", ErrInternal, err)
	}

	if _, err := s.CreateUser(ctx, DefaultAdminUser, DefaultAdminPassword); err != nil {
		return err
	}
	s.logger.Warn("EnsureDefaultAdmin: default admin account seeded, change the password")
	return nil
}
