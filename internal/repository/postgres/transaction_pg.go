// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"casinobuddy/internal/apperr"
	"casinobuddy/internal/domain"
	"casinobuddy/internal/repository"
)

// TransactionRepository implements repository.TransactionRepository for
// PostgreSQL.
type TransactionRepository struct {
	q repository.DBExecutor
}

// NewTransactionRepository creates a new TransactionRepository over the given
// executor.
func NewTransactionRepository(q repository.DBExecutor) repository.TransactionRepository {
	return &TransactionRepository{q: q}
}

// CreateTransaction inserts a new transaction record. Referential validity of
// user_id and casino_id is backstopped by the store's foreign keys, not
// checked here; a violation comes back as a constraint failure.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, userID, casinoID uuid.UUID, cost, benefit decimal.Decimal, notes *string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `INSERT INTO "transaction" (user_id, casino_id, cost, benefit, notes)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, user_id, casino_id, cost, benefit, notes, created_at, updated_at`
	err := r.q.GetContext(ctx, &transaction, query, userID, casinoID, cost, benefit, notes)
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("failed to create transaction: %w", err))
	}
	return &transaction, nil
}

// GetTransactionsByUserID retrieves all transactions for a user, newest first.
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT id, user_id, casino_id, cost, benefit, notes, created_at, updated_at
              FROM "transaction"
              WHERE user_id = $1
              ORDER BY created_at DESC`
	if err := r.q.SelectContext(ctx, &transactions, query, userID); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("failed to fetch transactions for user %s: %w", userID, err))
	}
	return transactions, nil
}
