package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fulfillment status values shared by purchases and ledger line items.
const (
	FulfillmentPending  int16 = 0
	FulfillmentComplete int16 = 1
)

type User struct {
	ID           int             `db:"id"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	FirstName    string          `db:"first_name"`
	LastName     string          `db:"last_name"`
	Address      string          `db:"address"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Product struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Category    string `db:"category"`
	CreatedBy   int    `db:"created_by"`
}

// InventoryItem is one seller's offer of a product. Price lives here,
// not on the product, so different sellers can price independently.
type InventoryItem struct {
	SellerID  int             `db:"seller_id"`
	ProductID int             `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

// CartItem carries the joined display fields the cart view needs in
// addition to the (buyer, product, seller, quantity) key.
type CartItem struct {
	BuyerID     int             `db:"account_id"`
	ProductID   int             `db:"product_id"`
	SellerID    int             `db:"seller_id"`
	Quantity    int             `db:"quantity"`
	ProductName string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	SellerName  string          `db:"seller_name"`
}

func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// WishlistItem carries the joined product fields the wishlist view shows.
type WishlistItem struct {
	UserID      int       `db:"account_id"`
	ProductID   int       `db:"product_id"`
	ProductName string    `db:"name"`
	Category    string    `db:"category"`
	AddedAt     time.Time `db:"added_at"`
}

type Purchase struct {
	ID                int             `db:"id"`
	BuyerID           int             `db:"buyer_id"`
	Address           string          `db:"address"`
	Total             decimal.Decimal `db:"total"`
	FulfillmentStatus int16           `db:"fulfillment_status"`
	CreatedAt         time.Time       `db:"created_at"`
	Items             []LedgerItem
}

// LedgerItem is one (seller, product) line of a purchase. UnitPrice is
// snapshotted at checkout time; later catalog price changes do not
// rewrite history.
type LedgerItem struct {
	PurchaseID        int             `db:"purchase_id"`
	SellerID          int             `db:"seller_id"`
	ProductID         int             `db:"product_id"`
	Quantity          int             `db:"quantity"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
	FulfillmentStatus int16           `db:"fulfillment_status"`
}

func (l LedgerItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
