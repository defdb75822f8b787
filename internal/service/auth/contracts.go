package auth

import (
	"context"

	"github.com/fcja/agendamentos/internal/domain"
)

// Store is the slice of the storage contract this service needs.
type Store interface {
	GetActiveUser(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

// Logger is the narrow logging interface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
