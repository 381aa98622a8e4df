package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	cartrepo "github.com/gomarket-io/gomarket/internal/repo/cart-repo"
	catalogrepo "github.com/gomarket-io/gomarket/internal/repo/catalog-repo"
	purchaserepo "github.com/gomarket-io/gomarket/internal/repo/purchase-repo"
	userrepo "github.com/gomarket-io/gomarket/internal/repo/user-repo"
	wishlistrepo "github.com/gomarket-io/gomarket/internal/repo/wishlist-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.Users)
	assert.NotNil(t, repo.Catalog)
	assert.NotNil(t, repo.Carts)
	assert.NotNil(t, repo.Purchases)
	assert.NotNil(t, repo.Wishlists)

	assert.IsType(t, &userrepo.Repository{}, repo.Users)
	assert.IsType(t, &catalogrepo.Repository{}, repo.Catalog)
	assert.IsType(t, &cartrepo.Repository{}, repo.Carts)
	assert.IsType(t, &purchaserepo.Repository{}, repo.Purchases)
	assert.IsType(t, &wishlistrepo.Repository{}, repo.Wishlists)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
