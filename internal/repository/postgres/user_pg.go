// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"casinobuddy/internal/apperr"
	"casinobuddy/internal/domain"
	"casinobuddy/internal/repository"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	q repository.DBExecutor
}

// NewUserRepository creates a new UserRepository over the given executor.
func NewUserRepository(q repository.DBExecutor) repository.UserRepository {
	return &UserRepository{q: q}
}

// CreateUser inserts a new user row. Only timestamps are written; the store
// generates the identifier.
func (r *UserRepository) CreateUser(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	query := `INSERT INTO "user" (created_at) VALUES (NOW()) RETURNING id`
	if err := r.q.GetContext(ctx, &id, query); err != nil {
		return uuid.Nil, apperr.FromStore(fmt.Errorf("failed to create user: %w", err))
	}
	return id, nil
}

// GetUserByID retrieves a user by id. Zero rows yields an empty slice.
func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, created_at, updated_at FROM "user" WHERE id = $1`
	if err := r.q.SelectContext(ctx, &users, query, id); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("failed to get user by id %s: %w", id, err))
	}
	return users, nil
}
