package balanceservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/pg"
)

type AccountRepo interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	GetBalanceForUpdate(ctx context.Context, userID int) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) error
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
}

type Service struct {
	accounts  AccountRepo
	txManager pg.TXManager
}

func New(accounts AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		accounts:  accounts,
		txManager: txManager,
	}
}

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

func (s *Service) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	balance, err := s.accounts.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Decimal{}, err
	}
	return balance, nil
}

func (s *Service) TopUp(ctx context.Context, userID int, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		return s.accounts.Credit(ctx, userID, amount)
	})
	if err != nil {
		zap.L().Error("failed to top up", zap.Error(err))
		return err
	}
	return nil
}

// Withdraw locks the account row, verifies sufficiency and debits inside
// one transaction, so a concurrent checkout cannot race the check.
func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.accounts.GetBalanceForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		debited, err := s.accounts.Debit(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to withdraw", zap.Error(err))
		}
		return err
	}
	return nil
}
