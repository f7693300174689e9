// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"casinobuddy/internal/domain"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// CreateTransaction inserts a new transaction row and returns the fully
	// populated record, including generated id and timestamps.
	CreateTransaction(ctx context.Context, userID, casinoID uuid.UUID, cost, benefit decimal.Decimal, notes *string) (*domain.Transaction, error)
	// GetTransactionsByUserID retrieves all transactions recorded for a user,
	// newest first.
	GetTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}
