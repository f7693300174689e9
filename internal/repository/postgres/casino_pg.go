// internal/repository/postgres/casino_pg.go
package postgres

import (
	"context"
	"fmt"

	"casinobuddy/internal/apperr"
	"casinobuddy/internal/domain"
	"casinobuddy/internal/repository"
)

// CasinoRepository implements repository.CasinoRepository for PostgreSQL.
type CasinoRepository struct {
	q repository.DBExecutor
}

// NewCasinoRepository creates a new CasinoRepository over the given executor.
func NewCasinoRepository(q repository.DBExecutor) repository.CasinoRepository {
	return &CasinoRepository{q: q}
}

// ListCasinos returns every casino on record.
func (r *CasinoRepository) ListCasinos(ctx context.Context) ([]domain.Casino, error) {
	casinos := []domain.Casino{}
	query := `SELECT id, name, url, description, created_at, updated_at FROM casino`
	if err := r.q.SelectContext(ctx, &casinos, query); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("failed to list casinos: %w", err))
	}
	return casinos, nil
}
