package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_CreatePurchase(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        INSERT INTO purchases (buyer_id, address, total, fulfillment_status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Purchase created",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(101, now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, "221B Baker Street", decimal.NewFromFloat(149.97), domain.FulfillmentPending).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, "221B Baker Street", decimal.NewFromFloat(149.97), domain.FulfillmentPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			purchase, err := repo.CreatePurchase(context.Background(), 1, "221B Baker Street", decimal.NewFromFloat(149.97))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 101, purchase.ID)
				assert.Equal(t, 1, purchase.BuyerID)
				assert.Equal(t, domain.FulfillmentPending, purchase.FulfillmentStatus)
				assert.Equal(t, now, purchase.CreatedAt)
			}
		})
	}
}

func TestRepository_AddLedgerItem(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        INSERT INTO ledger_items (purchase_id, seller_id, product_id, quantity, unit_price, fulfillment_status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	item := &domain.LedgerItem{
		PurchaseID:        101,
		SellerID:          3,
		ProductID:         12,
		Quantity:          2,
		UnitPrice:         decimal.NewFromFloat(49.99),
		FulfillmentStatus: domain.FulfillmentPending,
	}

	t.Run("Line recorded", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(101, 3, 12, 2, decimal.NewFromFloat(49.99), domain.FulfillmentPending).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.AddLedgerItem(context.Background(), item))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(101, 3, 12, 2, decimal.NewFromFloat(49.99), domain.FulfillmentPending).
			WillReturnError(errors.New("database error"))
		assert.Error(t, repo.AddLedgerItem(context.Background(), item))
	})
}

func TestRepository_GetPurchasesByBuyer(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        SELECT p.id, p.buyer_id, p.address, p.total, p.fulfillment_status, p.created_at,
               l.seller_id, l.product_id, l.quantity, l.unit_price, l.fulfillment_status
        FROM purchases p
        JOIN ledger_items l ON l.purchase_id = p.id
        WHERE p.buyer_id = $1
        ORDER BY p.created_at DESC, p.id, l.product_id
    `
	columns := []string{"id", "buyer_id", "address", "total", "fulfillment_status", "created_at",
		"seller_id", "product_id", "quantity", "unit_price", "line_status"}
	now := time.Now()

	t.Run("Lines grouped under their purchase", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(101, 1, "221B Baker Street", decimal.NewFromFloat(149.97), domain.FulfillmentPending, now,
				3, 12, 2, decimal.NewFromFloat(49.99), domain.FulfillmentComplete).
			AddRow(101, 1, "221B Baker Street", decimal.NewFromFloat(149.97), domain.FulfillmentPending, now,
				4, 15, 1, decimal.NewFromFloat(49.99), domain.FulfillmentPending)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(rows)

		purchases, err := repo.GetPurchasesByBuyer(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, purchases, 1)
		assert.Equal(t, 101, purchases[0].ID)
		assert.Len(t, purchases[0].Items, 2)
		assert.Equal(t, domain.FulfillmentComplete, purchases[0].Items[0].FulfillmentStatus)
		assert.Equal(t, domain.FulfillmentPending, purchases[0].Items[1].FulfillmentStatus)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetPurchasesByBuyer(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_SetLineStatus(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        UPDATE ledger_items
        SET fulfillment_status = $5
        WHERE purchase_id = $1 AND product_id = $2 AND seller_id = $3 AND fulfillment_status = $4
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		changed   bool
	}{
		{
			name: "Line flipped to complete",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			changed: true,
		},
		{
			name: "Wrong seller or already complete",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			changed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			changed, err := repo.SetLineStatus(context.Background(), 101, 12, 3, domain.FulfillmentPending, domain.FulfillmentComplete)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.changed, changed)
			}
		})
	}
}

func TestRepository_RefreshPurchaseStatus(t *testing.T) {
	repo, mock := NewMock(t)
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

	t.Run("Status re-derived", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(101, domain.FulfillmentPending, domain.FulfillmentComplete).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.RefreshPurchaseStatus(context.Background(), 101))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(101, domain.FulfillmentPending, domain.FulfillmentComplete).
			WillReturnError(errors.New("database error"))
		assert.Error(t, repo.RefreshPurchaseStatus(context.Background(), 101))
	})
}

func TestRepository_FindDriftedPurchases(t *testing.T) {
	repo, mock := NewMock(t)
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

	t.Run("Drifted ids returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(101).AddRow(105)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(domain.FulfillmentPending, 1000).
			WillReturnRows(rows)

		ids, err := repo.FindDriftedPurchases(context.Background(), 1000)
		assert.NoError(t, err)
		assert.Equal(t, []int{101, 105}, ids)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(domain.FulfillmentPending, 1000).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindDriftedPurchases(context.Background(), 1000)
		assert.Error(t, err)
	})
}
