package fulfillmentservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/pg"
)

type Repo interface {
	SetLineStatus(ctx context.Context, purchaseID, productID, sellerID int, from, to int16) (bool, error)
	RefreshPurchaseStatus(ctx context.Context, purchaseID int) error
	GetLedgerForSeller(ctx context.Context, sellerID int) ([]domain.LedgerItem, error)
	GetPurchasesByBuyer(ctx context.Context, buyerID int) ([]domain.Purchase, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// MarkFulfilled flips one pending line item of the seller to complete
// and re-derives the purchase-level status in the same transaction.
// Returns false when no row matched: wrong seller, wrong key, or the
// line was already complete.
func (s *Service) MarkFulfilled(ctx context.Context, sellerID, purchaseID, productID int) (bool, error) {
	return s.setStatus(ctx, sellerID, purchaseID, productID, domain.FulfillmentPending, domain.FulfillmentComplete)
}

// MarkUnfulfilled is the reverse flip, complete back to pending.
func (s *Service) MarkUnfulfilled(ctx context.Context, sellerID, purchaseID, productID int) (bool, error) {
	return s.setStatus(ctx, sellerID, purchaseID, productID, domain.FulfillmentComplete, domain.FulfillmentPending)
}

func (s *Service) setStatus(ctx context.Context, sellerID, purchaseID, productID int, from, to int16) (bool, error) {
	var changed bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		changed, err = s.repo.SetLineStatus(ctx, purchaseID, productID, sellerID, from, to)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.repo.RefreshPurchaseStatus(ctx, purchaseID)
	})
	if err != nil {
		zap.L().Error("failed to change fulfillment status",
			zap.Int("purchase_id", purchaseID),
			zap.Int("product_id", productID),
			zap.Int("seller_id", sellerID),
			zap.Error(err))
		return false, err
	}
	return changed, nil
}

func (s *Service) GetSellerLedger(ctx context.Context, sellerID int) ([]domain.LedgerItem, error) {
	items, err := s.repo.GetLedgerForSeller(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to get seller ledger", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) GetPurchases(ctx context.Context, buyerID int) ([]domain.Purchase, error) {
	purchases, err := s.repo.GetPurchasesByBuyer(ctx, buyerID)
	if err != nil {
		zap.L().Error("failed to get purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
