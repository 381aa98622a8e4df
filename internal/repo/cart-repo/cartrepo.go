package cartrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetCartItems(ctx context.Context, userID int) ([]domain.CartItem, error) {
	query := `
        SELECT c.account_id, c.product_id, c.seller_id, c.quantity,
               p.name, p.description, COALESCE(i.price, 0),
               TRIM(u.first_name || ' ' || u.last_name)
        FROM cart_items c
        JOIN products p ON c.product_id = p.id
        LEFT JOIN inventory i ON c.product_id = i.product_id AND c.seller_id = i.seller_id
        JOIN users u ON c.seller_id = u.id
        WHERE c.account_id = $1
        ORDER BY c.product_id, c.seller_id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(&item.BuyerID, &item.ProductID, &item.SellerID, &item.Quantity,
			&item.ProductName, &item.Description, &item.Price, &item.SellerName)
		if err != nil {
			zap.L().Error("can't scan cart row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) GetCartTotal(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(c.quantity * i.price), 0)
        FROM cart_items c
        JOIN inventory i ON c.product_id = i.product_id AND c.seller_id = i.seller_id
        WHERE c.account_id = $1
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("can't get cart total", zap.Error(err))
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (r *Repository) GetCartItemCount(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(quantity), 0)
        FROM cart_items
        WHERE account_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't get cart item count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// AddItem merges quantities when the (buyer, product, seller) row already
// exists and returns the resulting quantity.
func (r *Repository) AddItem(ctx context.Context, userID, productID, sellerID, quantity int) (int, error) {
	query := `
        INSERT INTO cart_items (account_id, product_id, seller_id, quantity)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (account_id, product_id, seller_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING quantity
    `
	var result int
	if err := r.db.QueryRow(ctx, query, userID, productID, sellerID, quantity).Scan(&result); err != nil {
		zap.L().Error("can't add cart item", zap.Error(err))
		return 0, err
	}
	return result, nil
}

// UpdateItem sets the exact quantity. A nil result means the row did not
// exist. Quantities <= 0 are handled by the service as a removal.
func (r *Repository) UpdateItem(ctx context.Context, userID, productID, sellerID, quantity int) (*int, error) {
	query := `
        UPDATE cart_items
        SET quantity = $4
        WHERE account_id = $1 AND product_id = $2 AND seller_id = $3
        RETURNING quantity
    `
	var result int
	err := r.db.QueryRow(ctx, query, userID, productID, sellerID, quantity).Scan(&result)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update cart item", zap.Error(err))
		return nil, err
	}
	return &result, nil
}

func (r *Repository) RemoveItem(ctx context.Context, userID, productID, sellerID int) (bool, error) {
	query := `
        DELETE FROM cart_items
        WHERE account_id = $1 AND product_id = $2 AND seller_id = $3
    `
	tag, err := r.db.Exec(ctx, query, userID, productID, sellerID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Clear(ctx context.Context, userID int) error {
	query := `
        DELETE FROM cart_items
        WHERE account_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}

// GetDefaultSeller picks the seller used when the caller names none.
// Tie-break is lowest price, then lowest seller id, among sellers with
// positive stock. A nil result means nobody stocks the product.
func (r *Repository) GetDefaultSeller(ctx context.Context, productID int) (*int, error) {
	query := `
        SELECT seller_id
        FROM inventory
        WHERE product_id = $1 AND quantity > 0
        ORDER BY price ASC, seller_id ASC
        LIMIT 1
    `
	var sellerID int
	err := r.db.QueryRow(ctx, query, productID).Scan(&sellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't pick default seller", zap.Error(err))
		return nil, err
	}
	return &sellerID, nil
}
