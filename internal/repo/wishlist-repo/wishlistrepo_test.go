package wishlistrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
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

func TestRepository_GetWishlist(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        SELECT w.account_id, w.product_id, p.name, p.category, w.added_at
        FROM wishlist_items w
        JOIN products p ON w.product_id = p.id
        WHERE w.account_id = $1
        ORDER BY w.added_at DESC, w.product_id
    `
	addedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Items returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"account_id", "product_id", "name", "category", "added_at"}).
			AddRow(1, 12, "Mechanical Keyboard", "Electronics", addedAt).
			AddRow(1, 15, "Desk Lamp", "Home", addedAt)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnRows(rows)

		items, err := repo.GetWishlist(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, domain.WishlistItem{
			UserID: 1, ProductID: 12, ProductName: "Mechanical Keyboard",
			Category: "Electronics", AddedAt: addedAt,
		}, items[0])
	})

	t.Run("Empty wishlist", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"account_id", "product_id", "name", "category", "added_at"})
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnRows(rows)

		items, err := repo.GetWishlist(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetWishlist(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_AddItem(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        INSERT INTO wishlist_items (account_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT (account_id, product_id) DO NOTHING
    `

	tests := []struct {
		name      string
		mockSetup func()
		added     bool
		wantErr   bool
	}{
		{
			name: "Product added",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, 12).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			added: true,
		},
		{
			name: "Already on the list",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, 12).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			added: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, 12).
					WillReturnError(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			added, err := repo.AddItem(context.Background(), 1, 12)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.added, added)
			}
		})
	}
}

func TestRepository_RemoveItem(t *testing.T) {
	repo, mock := NewMock(t)
	query := `
        DELETE FROM wishlist_items
        WHERE account_id = $1 AND product_id = $2
    `

	t.Run("Item removed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, 12).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		removed, err := repo.RemoveItem(context.Background(), 1, 12)
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("Not on the list", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, 12).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		removed, err := repo.RemoveItem(context.Background(), 1, 12)
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, 12).
			WillReturnError(errors.New("database error"))

		_, err := repo.RemoveItem(context.Background(), 1, 12)
		assert.Error(t, err)
	})
}
