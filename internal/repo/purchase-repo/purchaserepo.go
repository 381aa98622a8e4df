package purchaserepo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/domain"
	"github.com/gomarket-io/gomarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreatePurchase(ctx context.Context, buyerID int, address string, total decimal.Decimal) (*domain.Purchase, error) {
	query := `
        INSERT INTO purchases (buyer_id, address, total, fulfillment_status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	purchase := &domain.Purchase{
		BuyerID:           buyerID,
		Address:           address,
		Total:             total,
		FulfillmentStatus: domain.FulfillmentPending,
	}
	err := r.db.QueryRow(ctx, query, buyerID, address, total, domain.FulfillmentPending).
		Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		zap.L().Error("can't create purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) AddLedgerItem(ctx context.Context, item *domain.LedgerItem) error {
	query := `
        INSERT INTO ledger_items (purchase_id, seller_id, product_id, quantity, unit_price, fulfillment_status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		item.PurchaseID, item.SellerID, item.ProductID, item.Quantity, item.UnitPrice, item.FulfillmentStatus)
	if err != nil {
		zap.L().Error("can't add ledger item", zap.Error(err))
		return err
	}
	return nil
}

// GetPurchasesByBuyer returns the buyer's purchases newest first, each
// with its ledger line items attached.
func (r *Repository) GetPurchasesByBuyer(ctx context.Context, buyerID int) ([]domain.Purchase, error) {
	query := `
        SELECT p.id, p.buyer_id, p.address, p.total, p.fulfillment_status, p.created_at,
               l.seller_id, l.product_id, l.quantity, l.unit_price, l.fulfillment_status
        FROM purchases p
        JOIN ledger_items l ON l.purchase_id = p.id
        WHERE p.buyer_id = $1
        ORDER BY p.created_at DESC, p.id, l.product_id
    `
	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	index := make(map[int]int)
	for rows.Next() {
		var p domain.Purchase
		var item domain.LedgerItem
		err := rows.Scan(&p.ID, &p.BuyerID, &p.Address, &p.Total, &p.FulfillmentStatus, &p.CreatedAt,
			&item.SellerID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.FulfillmentStatus)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		item.PurchaseID = p.ID

		pos, ok := index[p.ID]
		if !ok {
			pos = len(purchases)
			index[p.ID] = pos
			purchases = append(purchases, p)
		}
		purchases[pos].Items = append(purchases[pos].Items, item)
	}
	return purchases, nil
}

func (r *Repository) GetLedgerForSeller(ctx context.Context, sellerID int) ([]domain.LedgerItem, error) {
	query := `
        SELECT purchase_id, seller_id, product_id, quantity, unit_price, fulfillment_status
        FROM ledger_items
        WHERE seller_id = $1
        ORDER BY purchase_id DESC, product_id
    `
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		zap.L().Error("can't get seller ledger", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.LedgerItem
	for rows.Next() {
		var item domain.LedgerItem
		err := rows.Scan(&item.PurchaseID, &item.SellerID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.FulfillmentStatus)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// SetLineStatus flips one line item from and to the given statuses. The
// seller id in the key makes ownership part of the condition, so a seller
// can never touch another seller's line.
func (r *Repository) SetLineStatus(ctx context.Context, purchaseID, productID, sellerID int, from, to int16) (bool, error) {
	query := `
        UPDATE ledger_items
        SET fulfillment_status = $5
        WHERE purchase_id = $1 AND product_id = $2 AND seller_id = $3 AND fulfillment_status = $4
    `
	tag, err := r.db.Exec(ctx, query, purchaseID, productID, sellerID, from, to)
	if err != nil {
		zap.L().Error("can't set line status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RefreshPurchaseStatus re-derives the purchase-level status from its
// line items: complete only when the purchase has lines and none of them
// is still pending. A purchase without lines stays pending.
func (r *Repository) RefreshPurchaseStatus(ctx context.Context, purchaseID int) error {
	query := `
        UPDATE purchases
        SET fulfillment_status = CASE
            WHEN EXISTS (
                SELECT 1 FROM ledger_items
                WHERE purchase_id = $1 AND fulfillment_status = $2
            ) THEN $2
            WHEN NOT EXISTS (
                SELECT 1 FROM ledger_items WHERE purchase_id = $1
            ) THEN $2
            ELSE $3
        END
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, purchaseID, domain.FulfillmentPending, domain.FulfillmentComplete)
	if err != nil {
		zap.L().Error("can't refresh purchase status", zap.Error(err))
		return err
	}
	return nil
}

// FindDriftedPurchases returns ids of purchases still marked pending
// although every line item is complete. Purchases without line items are
// not drifted, they stay pending.
func (r *Repository) FindDriftedPurchases(ctx context.Context, limit uint32) ([]int, error) {
	query := `
        SELECT p.id
        FROM purchases p
        WHERE p.fulfillment_status = $1
          AND EXISTS (
              SELECT 1 FROM ledger_items l
              WHERE l.purchase_id = p.id
          )
          AND NOT EXISTS (
              SELECT 1 FROM ledger_items l
              WHERE l.purchase_id = p.id AND l.fulfillment_status = $1
          )
        ORDER BY p.id
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.FulfillmentPending, int(limit))
	if err != nil {
		zap.L().Error("can't find drifted purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan purchase id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
