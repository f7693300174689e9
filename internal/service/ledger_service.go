// internal/service/ledger_service.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"casinobuddy/internal/domain"
	"casinobuddy/internal/repository"
)

// LedgerService defines the interface for ledger business logic. Every
// operation maps to exactly one store round-trip; errors coming back are
// already classified by the repository layer.
type LedgerService interface {
	ListCasinos(ctx context.Context) ([]domain.Casino, error)
	GetUser(ctx context.Context, id uuid.UUID) ([]domain.User, error)
	GetTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	CreateUser(ctx context.Context) (uuid.UUID, error)
	CreateTransaction(ctx context.Context, userID, casinoID uuid.UUID, cost, benefit decimal.Decimal, notes *string) (*domain.Transaction, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	casinoRepo      repository.CasinoRepository
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	casinoRepo repository.CasinoRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	logger *slog.Logger,
) LedgerService {
	return &ledgerService{
		casinoRepo:      casinoRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListCasinos returns the full casino listing.
func (s *ledgerService) ListCasinos(ctx context.Context) ([]domain.Casino, error) {
	s.logger.Info("Requesting casino listing")
	return s.casinoRepo.ListCasinos(ctx)
}

// GetUser fetches a user by id. An unknown id is an empty result, not an
// error.
func (s *ledgerService) GetUser(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	s.logger.Info("Getting user", "user_id", id)
	return s.userRepo.GetUserByID(ctx, id)
}

// GetTransactions lists all transactions recorded for a user, newest first.
func (s *ledgerService) GetTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	s.logger.Info("Getting transactions", "user_id", userID)
	return s.transactionRepo.GetTransactionsByUserID(ctx, userID)
}

// CreateUser inserts a new user and returns the generated identifier. No
// uniqueness check is performed; the wire email/username are validated for
// shape upstream but not persisted.
func (s *ledgerService) CreateUser(ctx context.Context) (uuid.UUID, error) {
	s.logger.Info("Creating user")
	return s.userRepo.CreateUser(ctx)
}

// CreateTransaction records a single purchase against a casino.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID, casinoID uuid.UUID, cost, benefit decimal.Decimal, notes *string) (*domain.Transaction, error) {
	s.logger.Info("Creating transaction", "user_id", userID, "casino_id", casinoID)
	return s.transactionRepo.CreateTransaction(ctx, userID, casinoID, cost, benefit, notes)
}
