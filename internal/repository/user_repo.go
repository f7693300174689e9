// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"casinobuddy/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser inserts a new user row and returns the generated identifier.
	// Timestamps are set by the store clock.
	CreateUser(ctx context.Context) (uuid.UUID, error)
	// GetUserByID retrieves a user by id. An absent user is an empty slice,
	// not an error; the caller decides what absence means.
	GetUserByID(ctx context.Context, id uuid.UUID) ([]domain.User, error)
}
