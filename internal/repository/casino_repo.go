// internal/repository/casino_repo.go
package repository

import (
	"context"

	"casinobuddy/internal/domain"
)

// CasinoRepository defines the interface for casino data operations.
// Casinos are read-only from the API's perspective.
type CasinoRepository interface {
	// ListCasinos returns every casino on record.
	ListCasinos(ctx context.Context) ([]domain.Casino, error)
}
