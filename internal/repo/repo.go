package repo

import (
	"github.com/gomarket-io/gomarket/internal/pg"
	cartrepo "github.com/gomarket-io/gomarket/internal/repo/cart-repo"
	catalogrepo "github.com/gomarket-io/gomarket/internal/repo/catalog-repo"
	purchaserepo "github.com/gomarket-io/gomarket/internal/repo/purchase-repo"
	userrepo "github.com/gomarket-io/gomarket/internal/repo/user-repo"
	wishlistrepo "github.com/gomarket-io/gomarket/internal/repo/wishlist-repo"
)

type Repositories struct {
	Users     *userrepo.Repository
	Catalog   *catalogrepo.Repository
	Carts     *cartrepo.Repository
	Purchases *purchaserepo.Repository
	Wishlists *wishlistrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Users:     userrepo.New(conn),
		Catalog:   catalogrepo.New(conn),
		Carts:     cartrepo.New(conn),
		Purchases: purchaserepo.New(conn),
		Wishlists: wishlistrepo.New(conn),
	}
}
