package service

import (
	"github.com/gomarket-io/gomarket/internal/handlers/balance"
	"github.com/gomarket-io/gomarket/internal/handlers/cart"
	"github.com/gomarket-io/gomarket/internal/handlers/catalog"
	"github.com/gomarket-io/gomarket/internal/handlers/checkout"
	"github.com/gomarket-io/gomarket/internal/handlers/fulfillment"
	"github.com/gomarket-io/gomarket/internal/handlers/wishlist"
	handlersauth "github.com/gomarket-io/gomarket/internal/handlers/auth"

	"github.com/gomarket-io/gomarket/internal/pg"
	"github.com/gomarket-io/gomarket/internal/repo"
	"github.com/gomarket-io/gomarket/internal/service/authservice"
	"github.com/gomarket-io/gomarket/internal/service/balanceservice"
	"github.com/gomarket-io/gomarket/internal/service/cartservice"
	"github.com/gomarket-io/gomarket/internal/service/catalogservice"
	"github.com/gomarket-io/gomarket/internal/service/checkoutservice"
	"github.com/gomarket-io/gomarket/internal/service/fulfillmentservice"
	"github.com/gomarket-io/gomarket/internal/service/wishlistservice"
	pkgauth "github.com/gomarket-io/gomarket/pkg/auth"
)

type Services struct {
	AuthService        handlersauth.Service
	BalanceService     balance.Service
	CartService        cart.Service
	CatalogService     catalog.Service
	CheckoutService    checkout.Service
	FulfillmentService fulfillment.Service
	WishlistService    wishlist.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.Users, &pkgauth.HashService{}, &pkgauth.JWTService{})
	balanceService := balanceservice.New(repo.Users, txManager)
	cartService := cartservice.New(repo.Carts)
	catalogService := catalogservice.New(repo.Catalog)
	checkoutService := checkoutservice.New(repo.Carts, repo.Users, repo.Catalog, repo.Purchases, txManager)
	fulfillmentService := fulfillmentservice.New(repo.Purchases, txManager)
	wishlistService := wishlistservice.New(repo.Wishlists)

	return &Services{
		AuthService:        authService,
		BalanceService:     balanceService,
		CartService:        cartService,
		CatalogService:     catalogService,
		CheckoutService:    checkoutService,
		FulfillmentService: fulfillmentService,
		WishlistService:    wishlistService,
	}
}
