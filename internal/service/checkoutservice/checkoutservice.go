package checkoutservice

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/pg"
)

type CartRepo interface {
	GetCartItems(ctx context.Context, userID int) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type AccountRepo interface {
	GetBalanceForUpdate(ctx context.Context, userID int) (decimal.Decimal, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) error
}

type InventoryRepo interface {
	DecrementStock(ctx context.Context, sellerID, productID, quantity int) (bool, error)
}

type PurchaseRepo interface {
	CreatePurchase(ctx context.Context, buyerID int, address string, total decimal.Decimal) (*domain.Purchase, error)
	AddLedgerItem(ctx context.Context, item *domain.LedgerItem) error
}

type Service struct {
	carts     CartRepo
	accounts  AccountRepo
	inventory InventoryRepo
	purchases PurchaseRepo
	txManager pg.TXManager
}

func New(carts CartRepo, accounts AccountRepo, inventory InventoryRepo, purchases PurchaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		carts:     carts,
		accounts:  accounts,
		inventory: inventory,
		purchases: purchases,
		txManager: txManager,
	}
}

var (
	ErrAddressRequired     = errors.New("shipping address is required")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

// CreatePurchase converts the buyer's cart into a purchase: prices every
// line from inventory, debits the buyer, credits each seller its
// subtotal, decrements stock, records ledger lines and clears the cart.
// Everything runs inside one serializable transaction; on any sentinel
// or storage failure no partial state survives.
func (s *Service) CreatePurchase(ctx context.Context, buyerID int, address string) (*domain.Purchase, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrAddressRequired
	}

	var purchase *domain.Purchase
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		items, err := s.carts.GetCartItems(ctx, buyerID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		grandTotal := decimal.Zero
		sellerTotals := make(map[int]decimal.Decimal)
		for _, item := range items {
			lineTotal := item.Subtotal()
			grandTotal = grandTotal.Add(lineTotal)
			sellerTotals[item.SellerID] = sellerTotals[item.SellerID].Add(lineTotal)
		}

		balance, err := s.accounts.GetBalanceForUpdate(ctx, buyerID)
		if err != nil {
			return err
		}
		if balance.LessThan(grandTotal) {
			return ErrInsufficientBalance
		}

		purchase, err = s.purchases.CreatePurchase(ctx, buyerID, strings.TrimSpace(address), grandTotal)
		if err != nil {
			return err
		}

		for _, item := range items {
			line := &domain.LedgerItem{
				PurchaseID:        purchase.ID,
				SellerID:          item.SellerID,
				ProductID:         item.ProductID,
				Quantity:          item.Quantity,
				UnitPrice:         item.Price,
				FulfillmentStatus: domain.FulfillmentPending,
			}
			if err := s.purchases.AddLedgerItem(ctx, line); err != nil {
				return err
			}

			ok, err := s.inventory.DecrementStock(ctx, item.SellerID, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}

			purchase.Items = append(purchase.Items, *line)
		}

		debited, err := s.accounts.Debit(ctx, buyerID, grandTotal)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}

		// Sellers are credited in id order so concurrent checkouts
		// touching the same sellers lock rows in the same sequence.
		sellerIDs := make([]int, 0, len(sellerTotals))
		for sellerID := range sellerTotals {
			sellerIDs = append(sellerIDs, sellerID)
		}
		sort.Ints(sellerIDs)
		for _, sellerID := range sellerIDs {
			if err := s.accounts.Credit(ctx, sellerID, sellerTotals[sellerID]); err != nil {
				return err
			}
		}

		return s.carts.Clear(ctx, buyerID)
	})
	if err != nil {
		if !errors.Is(err, ErrEmptyCart) && !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrInsufficientStock) {
			zap.L().Error("checkout failed", zap.Int("buyer_id", buyerID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("purchase created",
		zap.Int("purchase_id", purchase.ID),
		zap.Int("buyer_id", buyerID),
		zap.String("total", purchase.Total.String()))
	return purchase, nil
}
