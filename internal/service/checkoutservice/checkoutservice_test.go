package checkoutservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockCartRepo, *MockAccountRepo, *MockInventoryRepo, *MockPurchaseRepo) {
	ctrl := gomock.NewController(t)
	carts := NewMockCartRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)
	inventory := NewMockInventoryRepo(ctrl)
	purchases := NewMockPurchaseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(carts, accounts, inventory, purchases, txManager)
	defer ctrl.Finish()
	return service, carts, accounts, inventory, purchases
}

// decimalEq matches a decimal by value; reflect.DeepEqual would also
// compare the exponent, which differs between a literal and a computed
// total of the same amount.
func decimalEq(want decimal.Decimal) gomock.Matcher {
	return gomock.Cond(func(got decimal.Decimal) bool { return got.Equal(want) })
}

func cartFixture() []domain.CartItem {
	return []domain.CartItem{
		{BuyerID: 1, ProductID: 12, SellerID: 3, Quantity: 2, Price: decimal.NewFromFloat(25.00)},
		{BuyerID: 1, ProductID: 15, SellerID: 4, Quantity: 1, Price: decimal.NewFromFloat(50.00)},
	}
}

func TestCreatePurchase(t *testing.T) {
	service, carts, accounts, inventory, purchases := NewMock(t)
	total := decimal.NewFromFloat(100.00)

	tests := []struct {
		name          string
		address       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Successful multi-seller checkout",
			address: "221B Baker Street",
			prepareMock: func() {
				carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(cartFixture(), nil)
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(150.00), nil)
				purchases.EXPECT().CreatePurchase(gomock.Any(), 1, "221B Baker Street", decimalEq(total)).
					Return(&domain.Purchase{ID: 101, BuyerID: 1, Address: "221B Baker Street", Total: total, FulfillmentStatus: domain.FulfillmentPending}, nil)
				purchases.EXPECT().AddLedgerItem(gomock.Any(), &domain.LedgerItem{
					PurchaseID: 101, SellerID: 3, ProductID: 12, Quantity: 2,
					UnitPrice: decimal.NewFromFloat(25.00), FulfillmentStatus: domain.FulfillmentPending,
				}).Return(nil)
				inventory.EXPECT().DecrementStock(gomock.Any(), 3, 12, 2).Return(true, nil)
				purchases.EXPECT().AddLedgerItem(gomock.Any(), &domain.LedgerItem{
					PurchaseID: 101, SellerID: 4, ProductID: 15, Quantity: 1,
					UnitPrice: decimal.NewFromFloat(50.00), FulfillmentStatus: domain.FulfillmentPending,
				}).Return(nil)
				inventory.EXPECT().DecrementStock(gomock.Any(), 4, 15, 1).Return(true, nil)
				accounts.EXPECT().Debit(gomock.Any(), 1, decimalEq(total)).Return(true, nil)
				gomock.InOrder(
					accounts.EXPECT().Credit(gomock.Any(), 3, decimalEq(decimal.NewFromFloat(50.00))).Return(nil),
					accounts.EXPECT().Credit(gomock.Any(), 4, decimalEq(decimal.NewFromFloat(50.00))).Return(nil),
				)
				carts.EXPECT().Clear(gomock.Any(), 1).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Blank address rejected",
			address:       "   ",
			prepareMock:   func() {},
			expectedError: ErrAddressRequired,
		},
		{
			name:    "Empty cart rejected",
			address: "221B Baker Street",
			prepareMock: func() {
				carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrEmptyCart,
		},
		{
			name:    "Balance does not cover the total",
			address: "221B Baker Street",
			prepareMock: func() {
				carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(cartFixture(), nil)
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(10.00), nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:    "Stock ran out under a concurrent checkout",
			address: "221B Baker Street",
			prepareMock: func() {
				carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(cartFixture(), nil)
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(150.00), nil)
				purchases.EXPECT().CreatePurchase(gomock.Any(), 1, "221B Baker Street", decimalEq(total)).
					Return(&domain.Purchase{ID: 102, BuyerID: 1, Total: total}, nil)
				purchases.EXPECT().AddLedgerItem(gomock.Any(), gomock.Any()).Return(nil)
				inventory.EXPECT().DecrementStock(gomock.Any(), 3, 12, 2).Return(false, nil)
			},
			expectedError: ErrInsufficientStock,
		},
		{
			name:    "Debit guard fires inside the transaction",
			address: "221B Baker Street",
			prepareMock: func() {
				carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(cartFixture(), nil)
				accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(150.00), nil)
				purchases.EXPECT().CreatePurchase(gomock.Any(), 1, "221B Baker Street", decimalEq(total)).
					Return(&domain.Purchase{ID: 103, BuyerID: 1, Total: total}, nil)
				purchases.EXPECT().AddLedgerItem(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				inventory.EXPECT().DecrementStock(gomock.Any(), 3, 12, 2).Return(true, nil)
				inventory.EXPECT().DecrementStock(gomock.Any(), 4, 15, 1).Return(true, nil)
				accounts.EXPECT().Debit(gomock.Any(), 1, decimalEq(total)).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:    "Storage failure surfaces",
			address: "221B Baker Street",
			prepareMock: func() {
				carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			purchase, err := service.CreatePurchase(context.Background(), 1, tt.address)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, purchase)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 101, purchase.ID)
				assert.True(t, total.Equal(purchase.Total))
				assert.Len(t, purchase.Items, 2)
			}
		})
	}
}

func TestCreatePurchase_AddressTrimmed(t *testing.T) {
	service, carts, accounts, inventory, purchases := NewMock(t)

	items := []domain.CartItem{
		{BuyerID: 1, ProductID: 12, SellerID: 3, Quantity: 1, Price: decimal.NewFromFloat(70.00)},
	}
	total := decimal.NewFromFloat(70.00)

	carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(items, nil)
	accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(70.00), nil)
	purchases.EXPECT().CreatePurchase(gomock.Any(), 1, "742 Evergreen Terrace", decimalEq(total)).
		Return(&domain.Purchase{ID: 104, BuyerID: 1, Total: total}, nil)
	purchases.EXPECT().AddLedgerItem(gomock.Any(), gomock.Any()).Return(nil)
	inventory.EXPECT().DecrementStock(gomock.Any(), 3, 12, 1).Return(true, nil)
	accounts.EXPECT().Debit(gomock.Any(), 1, decimalEq(total)).Return(true, nil)
	accounts.EXPECT().Credit(gomock.Any(), 3, decimalEq(total)).Return(nil)
	carts.EXPECT().Clear(gomock.Any(), 1).Return(nil)

	purchase, err := service.CreatePurchase(context.Background(), 1, "  742 Evergreen Terrace  ")
	assert.NoError(t, err)
	assert.Equal(t, 104, purchase.ID)
}

// The buyer's debit must equal the sum of seller credits, exactly.
func TestCreatePurchase_MoneyConserved(t *testing.T) {
	service, carts, accounts, inventory, purchases := NewMock(t)

	items := []domain.CartItem{
		{BuyerID: 1, ProductID: 12, SellerID: 3, Quantity: 3, Price: decimal.NewFromFloat(19.99)},
		{BuyerID: 1, ProductID: 13, SellerID: 3, Quantity: 1, Price: decimal.NewFromFloat(5.01)},
		{BuyerID: 1, ProductID: 15, SellerID: 4, Quantity: 2, Price: decimal.NewFromFloat(12.50)},
	}

	var debited decimal.Decimal
	credited := decimal.Zero

	carts.EXPECT().GetCartItems(gomock.Any(), 1).Return(items, nil)
	accounts.EXPECT().GetBalanceForUpdate(gomock.Any(), 1).Return(decimal.NewFromFloat(1000), nil)
	purchases.EXPECT().CreatePurchase(gomock.Any(), 1, "221B Baker Street", gomock.Any()).
		DoAndReturn(func(_ context.Context, buyerID int, address string, total decimal.Decimal) (*domain.Purchase, error) {
			return &domain.Purchase{ID: 105, BuyerID: buyerID, Address: address, Total: total}, nil
		})
	purchases.EXPECT().AddLedgerItem(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	inventory.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
	accounts.EXPECT().Debit(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal) (bool, error) {
			debited = amount
			return true, nil
		})
	accounts.EXPECT().Credit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, amount decimal.Decimal) error {
			credited = credited.Add(amount)
			return nil
		}).Times(2)
	carts.EXPECT().Clear(gomock.Any(), 1).Return(nil)

	purchase, err := service.CreatePurchase(context.Background(), 1, "221B Baker Street")
	assert.NoError(t, err)
	assert.True(t, debited.Equal(credited), "debit %s != credits %s", debited, credited)
	assert.True(t, purchase.Total.Equal(decimal.NewFromFloat(89.98)))
}
