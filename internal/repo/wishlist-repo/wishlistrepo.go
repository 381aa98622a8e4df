package wishlistrepo

import (
	"context"

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

func (r *Repository) GetWishlist(ctx context.Context, userID int) ([]domain.WishlistItem, error) {
	query := `
        SELECT w.account_id, w.product_id, p.name, p.category, w.added_at
        FROM wishlist_items w
        JOIN products p ON w.product_id = p.id
        WHERE w.account_id = $1
        ORDER BY w.added_at DESC, w.product_id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get wishlist", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		err := rows.Scan(&item.UserID, &item.ProductID, &item.ProductName,
			&item.Category, &item.AddedAt)
		if err != nil {
			zap.L().Error("can't scan wishlist row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// AddItem saves a product for later. Re-adding a product already on the
// list is a no-op; the result reports whether a row was created.
func (r *Repository) AddItem(ctx context.Context, userID, productID int) (bool, error) {
	query := `
        INSERT INTO wishlist_items (account_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT (account_id, product_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		zap.L().Error("can't add wishlist item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) RemoveItem(ctx context.Context, userID, productID int) (bool, error) {
	query := `
        DELETE FROM wishlist_items
        WHERE account_id = $1 AND product_id = $2
    `
	tag, err := r.db.Exec(ctx, query, userID, productID)
	if err != nil {
		zap.L().Error("can't remove wishlist item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
