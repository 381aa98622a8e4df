package catalogrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
        SELECT id, name, description, category, COALESCE(created_by, 0)
        FROM products
        WHERE id = $1
    `
	var p domain.Product
	err := r.db.QueryRow(ctx, query, productID).
		Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// ListProducts returns products with at least one seller. Category and
// keyword filters are optional; empty strings disable them.
func (r *Repository) ListProducts(ctx context.Context, category, keyword string) ([]domain.Product, error) {
	query := `
        SELECT DISTINCT p.id, p.name, p.description, p.category, COALESCE(p.created_by, 0)
        FROM products p
        JOIN inventory i ON p.id = i.product_id
        WHERE ($1 = '' OR p.category = $1)
          AND ($2 = '' OR p.name ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
        ORDER BY p.id
    `
	rows, err := r.db.Query(ctx, query, category, keyword)
	if err != nil {
		zap.L().Error("can't list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.CreatedBy); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *Repository) GetCategories(ctx context.Context) ([]string, error) {
	query := `
        SELECT DISTINCT p.category
        FROM products p
        JOIN inventory i ON p.id = i.product_id
        WHERE p.category <> ''
        ORDER BY p.category
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, category, created_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, p.Name, p.Description, p.Category, p.CreatedBy).Scan(&p.ID)
	if err != nil {
		zap.L().Error("can't create product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, p *domain.Product) (bool, error) {
	query := `
        UPDATE products
        SET name = $1, description = $2, category = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, p.Name, p.Description, p.Category, p.ID)
	if err != nil {
		zap.L().Error("can't update product", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetInventoryForSeller(ctx context.Context, sellerID int) ([]domain.InventoryItem, error) {
	query := `
        SELECT seller_id, product_id, quantity, price
        FROM inventory
        WHERE seller_id = $1
        ORDER BY product_id
    `
	return r.queryInventory(ctx, query, sellerID)
}

func (r *Repository) GetSellersForProduct(ctx context.Context, productID int) ([]domain.InventoryItem, error) {
	query := `
        SELECT seller_id, product_id, quantity, price
        FROM inventory
        WHERE product_id = $1
        ORDER BY price ASC, seller_id ASC
    `
	return r.queryInventory(ctx, query, productID)
}

func (r *Repository) queryInventory(ctx context.Context, query string, arg any) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.SellerID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			zap.L().Error("can't scan inventory row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) UpsertInventory(ctx context.Context, item *domain.InventoryItem) error {
	query := `
        INSERT INTO inventory (seller_id, product_id, quantity, price)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (seller_id, product_id)
        DO UPDATE SET quantity = EXCLUDED.quantity, price = EXCLUDED.price
    `
	_, err := r.db.Exec(ctx, query, item.SellerID, item.ProductID, item.Quantity, item.Price)
	if err != nil {
		zap.L().Error("can't upsert inventory", zap.Error(err))
		return err
	}
	return nil
}

// DecrementStock deducts quantity only while enough stock remains and
// reports whether the deduction applied.
func (r *Repository) DecrementStock(ctx context.Context, sellerID, productID, quantity int) (bool, error) {
	query := `
        UPDATE inventory
        SET quantity = quantity - $3
        WHERE seller_id = $1 AND product_id = $2 AND quantity >= $3
    `
	tag, err := r.db.Exec(ctx, query, sellerID, productID, quantity)
	if err != nil {
		zap.L().Error("can't decrement stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
