package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/gomarket-io/gomarket/docs"
	authhandlers "github.com/gomarket-io/gomarket/internal/handlers/auth"
	balancehandlers "github.com/gomarket-io/gomarket/internal/handlers/balance"
	carthandlers "github.com/gomarket-io/gomarket/internal/handlers/cart"
	cataloghandlers "github.com/gomarket-io/gomarket/internal/handlers/catalog"
	checkouthandlers "github.com/gomarket-io/gomarket/internal/handlers/checkout"
	fulfillmenthandlers "github.com/gomarket-io/gomarket/internal/handlers/fulfillment"
	wishlisthandlers "github.com/gomarket-io/gomarket/internal/handlers/wishlist"
	"github.com/gomarket-io/gomarket/internal/service"
	"github.com/gomarket-io/gomarket/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	GetCart(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
}

type CheckoutHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	GetCategories(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	GetSellers(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	GetInventory(w http.ResponseWriter, r *http.Request)
	SetInventory(w http.ResponseWriter, r *http.Request)
}

type FulfillmentHandler interface {
	MarkFulfilled(w http.ResponseWriter, r *http.Request)
	MarkUnfulfilled(w http.ResponseWriter, r *http.Request)
	GetSellerLedger(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type WishlistHandler interface {
	GetWishlist(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	RemoveItem(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	CartHandler        CartHandler
	CheckoutHandler    CheckoutHandler
	BalanceHandler     BalanceHandler
	CatalogHandler     CatalogHandler
	FulfillmentHandler FulfillmentHandler
	WishlistHandler    WishlistHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		CartHandler:        carthandlers.New(s.CartService),
		CheckoutHandler:    checkouthandlers.New(s.CheckoutService),
		BalanceHandler:     balancehandlers.New(s.BalanceService),
		CatalogHandler:     cataloghandlers.New(s.CatalogService),
		FulfillmentHandler: fulfillmenthandlers.New(s.FulfillmentService),
		WishlistHandler:    wishlisthandlers.New(s.WishlistService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Get("/products", h.CatalogHandler.ListProducts)
		r.Get("/products/categories", h.CatalogHandler.GetCategories)
		r.Get("/products/{id}", h.CatalogHandler.GetProduct)
		r.Get("/products/{id}/sellers", h.CatalogHandler.GetSellers)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Post("/products", h.CatalogHandler.CreateProduct)
			r.Put("/products/{id}", h.CatalogHandler.UpdateProduct)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.CartHandler.GetCart)
				r.Post("/items", h.CartHandler.AddItem)
				r.Put("/items", h.CartHandler.UpdateItem)
				r.Delete("/items", h.CartHandler.RemoveItem)
				r.Post("/checkout", h.CheckoutHandler.Checkout)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", h.WishlistHandler.GetWishlist)
				r.Post("/{productID}", h.WishlistHandler.AddItem)
				r.Delete("/{productID}", h.WishlistHandler.RemoveItem)
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", h.AuthHandler.GetProfile)
				r.Put("/profile", h.AuthHandler.UpdateProfile)
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Post("/balance/topup", h.BalanceHandler.TopUp)
				r.Post("/balance/withdraw", h.BalanceHandler.Withdraw)
				r.Get("/purchases", h.FulfillmentHandler.GetPurchases)
			})

			r.Route("/seller", func(r chi.Router) {
				r.Get("/inventory", h.CatalogHandler.GetInventory)
				r.Put("/inventory", h.CatalogHandler.SetInventory)
				r.Get("/orders", h.FulfillmentHandler.GetSellerLedger)
				r.Post("/orders/{purchaseID}/items/{productID}/fulfill", h.FulfillmentHandler.MarkFulfilled)
				r.Post("/orders/{purchaseID}/items/{productID}/unfulfill", h.FulfillmentHandler.MarkUnfulfilled)
			})
		})
	})

	return r
}
