package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gomarket-io/gomarket/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(accounts, txManager)
	defer ctrl.Finish()
	return service, accounts
}

func TestGetBalance(t *testing.T) {
	service, accounts := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func() {
				accounts.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.NewFromFloat(250.75), nil)
			},
			expectedBalance: decimal.NewFromFloat(250.75),
		},
		{
			name: "Error retrieving balance",
			prepareMock: func() {
				accounts.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Decimal{}, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedBalance.Equal(balance))
			}
		})
	}
}

func TestTopUp(t *testing.T) {
	service, accounts := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful top up",
			amount: decimal.NewFromFloat(100.50),
			prepareMock: func() {
				accounts.EXPECT().Credit(gomock.Any(), 1, decimal.NewFromFloat(100.50)).Return(nil)
			},
		},
		{
			name:          "Zero amount rejected",
			amount:        decimal.Zero,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			amount:        decimal.NewFromFloat(-5),
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Error crediting account",
			amount: decimal.NewFromFloat(100.50),
			prepareMock: func() {
				accounts.EXPECT().Credit(gomock.Any(), 1, decimal.NewFromFloat(100.50)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.TopUp(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, accounts := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful withdrawal",
			amount: decimal.NewFromFloat(50),
			prepareMock: func() {
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(100), nil)
				accounts.EXPECT().Debit(gomock.Any(), 1, decimal.NewFromFloat(50)).Return(true, nil)
			},
		},
		{
			name:   "Insufficient balance",
			amount: decimal.NewFromFloat(150),
			prepareMock: func() {
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(100), nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Debit guard fires",
			amount: decimal.NewFromFloat(50),
			prepareMock: func() {
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(100), nil)
				accounts.EXPECT().Debit(gomock.Any(), 1, decimal.NewFromFloat(50)).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:          "Invalid amount",
			amount:        decimal.Zero,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Error reading balance",
			amount: decimal.NewFromFloat(50),
			prepareMock: func() {
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.Decimal{}, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Withdraw(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
