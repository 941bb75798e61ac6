package ledgerservice

import (
	"context"
	"errors"

	"github.com/fortunapp/fortuna/internal/domain"
	"go.uber.org/zap"
)

type LedgerRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error)
	Debit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

// BalanceListener receives the authoritative balance after every successful
// mutation. Listeners belong to the consuming layer; the service itself keeps
// no state between calls.
type BalanceListener func(userID int, newBalance int)

type Service struct {
	ledgerRepo LedgerRepo
	listeners  []BalanceListener
}

func New(ledgerRepo LedgerRepo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

func (s *Service) OnBalanceChange(fn BalanceListener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notifyListeners(userID, newBalance int) {
	for _, fn := range s.listeners {
		fn(userID, newBalance)
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	balance, err := s.ledgerRepo.Credit(ctx, userID, amount, txType, referenceID)
	if err != nil {
		zap.L().Error("failed to credit balance", zap.Error(err))
		return nil, err
	}
	s.notifyListeners(userID, balance.TokenBalance)
	return balance, nil
}

func (s *Service) Debit(ctx context.Context, userID int, amount int, txType domain.TransactionType, referenceID *string) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	balance, err := s.ledgerRepo.Debit(ctx, userID, amount, txType, referenceID)
	if err != nil {
		zap.L().Error("failed to debit balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, ErrInsufficientBalance
	}
	s.notifyListeners(userID, balance.TokenBalance)
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.ledgerRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
