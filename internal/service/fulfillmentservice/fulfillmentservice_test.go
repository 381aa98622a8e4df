package fulfillmentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(repo, txManager)
	defer ctrl.Finish()
	return service, repo
}

func TestMarkFulfilled(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedChanged bool
		expectErr       bool
	}{
		{
			name: "Pending line flipped and purchase re-derived",
			prepareMock: func() {
				repo.EXPECT().SetLineStatus(gomock.Any(), 101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					Return(true, nil)
				repo.EXPECT().RefreshPurchaseStatus(gomock.Any(), 101).Return(nil)
			},
			expectedChanged: true,
		},
		{
			name: "Line not owned or already complete",
			prepareMock: func() {
				repo.EXPECT().SetLineStatus(gomock.Any(), 101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					Return(false, nil)
			},
			expectedChanged: false,
		},
		{
			name: "Flip fails",
			prepareMock: func() {
				repo.EXPECT().SetLineStatus(gomock.Any(), 101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					Return(false, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name: "Roll-up fails",
			prepareMock: func() {
				repo.EXPECT().SetLineStatus(gomock.Any(), 101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					Return(true, nil)
				repo.EXPECT().RefreshPurchaseStatus(gomock.Any(), 101).Return(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			changed, err := service.MarkFulfilled(context.Background(), 3, 101, 12)
			if tt.expectErr {
				assert.Error(t, err)
				assert.False(t, changed)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedChanged, changed)
			}
		})
	}
}

func TestMarkUnfulfilled(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Complete line flipped back to pending", func(t *testing.T) {
		repo.EXPECT().SetLineStatus(gomock.Any(), 101, 12, 3, domain.FulfillmentComplete, domain.FulfillmentPending).
			Return(true, nil)
		repo.EXPECT().RefreshPurchaseStatus(gomock.Any(), 101).Return(nil)

		changed, err := service.MarkUnfulfilled(context.Background(), 3, 101, 12)
		assert.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("Still pending line stays put", func(t *testing.T) {
		repo.EXPECT().SetLineStatus(gomock.Any(), 101, 12, 3, domain.FulfillmentComplete, domain.FulfillmentPending).
			Return(false, nil)

		changed, err := service.MarkUnfulfilled(context.Background(), 3, 101, 12)
		assert.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestGetSellerLedger(t *testing.T) {
	service, repo := NewMock(t)

	items := []domain.LedgerItem{
		{PurchaseID: 101, SellerID: 3, ProductID: 12, Quantity: 2, FulfillmentStatus: domain.FulfillmentPending},
	}

	t.Run("Ledger returned", func(t *testing.T) {
		repo.EXPECT().GetLedgerForSeller(gomock.Any(), 3).Return(items, nil)

		result, err := service.GetSellerLedger(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, items, result)
	})

	t.Run("Error retrieving ledger", func(t *testing.T) {
		repo.EXPECT().GetLedgerForSeller(gomock.Any(), 3).Return(nil, errors.New("db error"))

		_, err := service.GetSellerLedger(context.Background(), 3)
		assert.Error(t, err)
	})
}

func TestGetPurchases(t *testing.T) {
	service, repo := NewMock(t)

	purchases := []domain.Purchase{
		{ID: 101, BuyerID: 1, FulfillmentStatus: domain.FulfillmentPending},
	}

	t.Run("Purchases returned", func(t *testing.T) {
		repo.EXPECT().GetPurchasesByBuyer(gomock.Any(), 1).Return(purchases, nil)

		result, err := service.GetPurchases(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, purchases, result)
	})

	t.Run("Error retrieving purchases", func(t *testing.T) {
		repo.EXPECT().GetPurchasesByBuyer(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.GetPurchases(context.Background(), 1)
		assert.Error(t, err)
	})
}
