package catalogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gomarket-io/gomarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetProduct(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        SELECT id, name, description, category, COALESCE(created_by, 0)
        FROM products
        WHERE id = $1
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Product found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "description", "category", "created_by"}).
					AddRow(12, "Keyboard", "Mechanical keyboard", "Electronics", 3)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(12).
					WillReturnRows(rows)
			},
			result: &domain.Product{
				ID:          12,
				Name:        "Keyboard",
				Description: "Mechanical keyboard",
				Category:    "Electronics",
				CreatedBy:   3,
			},
		},
		{
			name: "Product not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(12).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(12).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetProduct(context.Background(), 12)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListProducts(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        SELECT DISTINCT p.id, p.name, p.description, p.category, COALESCE(p.created_by, 0)
        FROM products p
        JOIN inventory i ON p.id = i.product_id
        WHERE ($1 = '' OR p.category = $1)
          AND ($2 = '' OR p.name ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
        ORDER BY p.id
    `
	columns := []string{"id", "name", "description", "category", "created_by"}

	tests := []struct {
		name      string
		category  string
		keyword   string
		mockSetup func()
		expectErr bool
		result    []domain.Product
	}{
		{
			name: "No filters",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(12, "Keyboard", "Mechanical keyboard", "Electronics", 3).
					AddRow(15, "Mouse", "Optical mouse", "Electronics", 4)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("", "").
					WillReturnRows(rows)
			},
			result: []domain.Product{
				{ID: 12, Name: "Keyboard", Description: "Mechanical keyboard", Category: "Electronics", CreatedBy: 3},
				{ID: 15, Name: "Mouse", Description: "Optical mouse", Category: "Electronics", CreatedBy: 4},
			},
		},
		{
			name:     "Category and keyword filters",
			category: "Electronics",
			keyword:  "mouse",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(15, "Mouse", "Optical mouse", "Electronics", 4)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("Electronics", "mouse").
					WillReturnRows(rows)
			},
			result: []domain.Product{
				{ID: 15, Name: "Mouse", Description: "Optical mouse", Category: "Electronics", CreatedBy: 4},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("", "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListProducts(context.Background(), tt.category, tt.keyword)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetSellersForProduct(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        SELECT seller_id, product_id, quantity, price
        FROM inventory
        WHERE product_id = $1
        ORDER BY price ASC, seller_id ASC
    `

	t.Run("Offers sorted by price then seller id", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"seller_id", "product_id", "quantity", "price"}).
			AddRow(4, 12, 5, decimal.NewFromFloat(39.99)).
			AddRow(3, 12, 10, decimal.NewFromFloat(49.99))
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(12).
			WillReturnRows(rows)

		offers, err := repo.GetSellersForProduct(context.Background(), 12)
		assert.NoError(t, err)
		assert.Equal(t, []domain.InventoryItem{
			{SellerID: 4, ProductID: 12, Quantity: 5, Price: decimal.NewFromFloat(39.99)},
			{SellerID: 3, ProductID: 12, Quantity: 10, Price: decimal.NewFromFloat(49.99)},
		}, offers)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(12).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetSellersForProduct(context.Background(), 12)
		assert.Error(t, err)
	})
}

func TestRepository_UpsertInventory(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        INSERT INTO inventory (seller_id, product_id, quantity, price)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (seller_id, product_id)
        DO UPDATE SET quantity = EXCLUDED.quantity, price = EXCLUDED.price
    `
	item := &domain.InventoryItem{SellerID: 3, ProductID: 12, Quantity: 10, Price: decimal.NewFromFloat(49.99)}

	t.Run("Offer upserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(3, 12, 10, decimal.NewFromFloat(49.99)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.UpsertInventory(context.Background(), item))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(3, 12, 10, decimal.NewFromFloat(49.99)).
			WillReturnError(errors.New("database error"))
		assert.Error(t, repo.UpsertInventory(context.Background(), item))
	})
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        UPDATE inventory
        SET quantity = quantity - $3
        WHERE seller_id = $1 AND product_id = $2 AND quantity >= $3
    `

	tests := []struct {
		name      string
		quantity  int
		mockSetup func()
		expectErr bool
		applied   bool
	}{
		{
			name:     "Stock deducted",
			quantity: 2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(3, 12, 2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			applied: true,
		},
		{
			name:     "Not enough stock",
			quantity: 99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(3, 12, 99).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			applied: false,
		},
		{
			name:     "Database error",
			quantity: 2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(3, 12, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			applied, err := repo.DecrementStock(context.Background(), 3, 12, tt.quantity)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.applied, applied)
			}
		})
	}
}

func TestRepository_GetCategories(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        SELECT DISTINCT p.category
        FROM products p
        JOIN inventory i ON p.id = i.product_id
        WHERE p.category <> ''
        ORDER BY p.category
    `

	t.Run("Categories returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"category"}).
			AddRow("Books").
			AddRow("Electronics")
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

		categories, err := repo.GetCategories(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"Books", "Electronics"}, categories)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("database error"))

		_, err := repo.GetCategories(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_UpdateProduct(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        UPDATE products
        SET name = $1, description = $2, category = $3
        WHERE id = $4
    `

	product := &domain.Product{
		ID:          12,
		Name:        "Keyboard",
		Description: "Mechanical keyboard",
		Category:    "Electronics",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		updated   bool
	}{
		{
			name: "Product updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("Keyboard", "Mechanical keyboard", "Electronics", 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "Product missing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("Keyboard", "Mechanical keyboard", "Electronics", 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("Keyboard", "Mechanical keyboard", "Electronics", 12).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateProduct(context.Background(), product)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, updated)
			}
		})
	}
}
