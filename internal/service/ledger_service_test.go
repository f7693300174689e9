// internal/service/ledger_service_test.go
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"casinobuddy/internal/apperr"
	"casinobuddy/internal/domain"
)

// MockCasinoRepository is a mock implementation of repository.CasinoRepository.
type MockCasinoRepository struct {
	mock.Mock
}

func (m *MockCasinoRepository) ListCasinos(ctx context.Context) ([]domain.Casino, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Casino), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context) (uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockTransactionRepository is a mock implementation of
// repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, userID, casinoID uuid.UUID, cost, benefit decimal.Decimal, notes *string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, casinoID, cost, benefit, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type mocks struct {
	casino      *MockCasinoRepository
	user        *MockUserRepository
	transaction *MockTransactionRepository
}

func newTestService() (LedgerService, mocks) {
	m := mocks{
		casino:      new(MockCasinoRepository),
		user:        new(MockUserRepository),
		transaction: new(MockTransactionRepository),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLedgerService(m.casino, m.user, m.transaction, logger), m
}

func TestGetUserDelegates(t *testing.T) {
	svc, m := newTestService()
	userID := uuid.New()
	want := []domain.User{{ID: userID}}
	m.user.On("GetUserByID", mock.Anything, userID).Return(want, nil)

	got, err := svc.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	m.user.AssertExpectations(t)
}

func TestGetUserEmptyResultIsNotAnError(t *testing.T) {
	svc, m := newTestService()
	userID := uuid.New()
	m.user.On("GetUserByID", mock.Anything, userID).Return([]domain.User{}, nil)

	got, err := svc.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateUserReturnsGeneratedID(t *testing.T) {
	svc, m := newTestService()
	userID := uuid.New()
	m.user.On("CreateUser", mock.Anything).Return(userID, nil)

	got, err := svc.CreateUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestCreateTransactionPassesArgumentsThrough(t *testing.T) {
	svc, m := newTestService()
	userID := uuid.New()
	casinoID := uuid.New()
	cost := decimal.RequireFromString("10.00")
	benefit := decimal.RequireFromString("12.50")
	notes := "welcome bonus"
	created := &domain.Transaction{ID: uuid.New(), UserID: userID, CasinoID: casinoID, Cost: domain.NewMoney(cost), Benefit: domain.NewMoney(benefit), Notes: &notes}
	m.transaction.On("CreateTransaction", mock.Anything, userID, casinoID, cost, benefit, &notes).Return(created, nil)

	got, err := svc.CreateTransaction(context.Background(), userID, casinoID, cost, benefit, &notes)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	m.transaction.AssertExpectations(t)
}

func TestErrorsPropagateTyped(t *testing.T) {
	svc, m := newTestService()
	storeErr := apperr.Wrap(apperr.InternalServerError, errors.New("connection refused"))
	m.casino.On("ListCasinos", mock.Anything).Return(nil, storeErr)

	_, err := svc.ListCasinos(context.Background())
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.InternalServerError, appErr.Kind)
}

func TestGetTransactionsDelegates(t *testing.T) {
	svc, m := newTestService()
	userID := uuid.New()
	want := []domain.Transaction{{ID: uuid.New(), UserID: userID}}
	m.transaction.On("GetTransactionsByUserID", mock.Anything, userID).Return(want, nil)

	got, err := svc.GetTransactions(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
