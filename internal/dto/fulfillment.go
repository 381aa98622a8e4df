package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SellerLedgerItemDTO struct {
	PurchaseID        int             `json:"purchase_id" example:"101"`
	ProductID         int             `json:"product_id" example:"12"`
	Quantity          int             `json:"quantity" example:"2"`
	UnitPrice         decimal.Decimal `json:"unit_price" example:"49.99"`
	FulfillmentStatus int16           `json:"fulfillment_status" example:"0"`
}

type FulfillResponseDTO struct {
	Updated bool `json:"updated"`
}

type PurchaseHistoryItemDTO struct {
	PurchaseID        int               `json:"purchase_id" example:"101"`
	Address           string            `json:"address"`
	Date              time.Time         `json:"date"`
	Total             decimal.Decimal   `json:"total" example:"149.97"`
	FulfillmentStatus int16             `json:"fulfillment_status" example:"0"`
	Items             []PurchaseItemDTO `json:"items"`
}
