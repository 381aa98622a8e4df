package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutRequestDTO struct {
	Address string `json:"address" validate:"required"`
}

type PurchaseItemDTO struct {
	ProductID         int             `json:"product_id" example:"12"`
	SellerID          int             `json:"seller_id" example:"3"`
	Quantity          int             `json:"quantity" example:"2"`
	UnitPrice         decimal.Decimal `json:"unit_price" example:"49.99"`
	FulfillmentStatus int16           `json:"fulfillment_status" example:"0"`
}

type PurchaseResponseDTO struct {
	PurchaseID        int               `json:"purchase_id" example:"101"`
	Address           string            `json:"address"`
	Date              time.Time         `json:"date"`
	Total             decimal.Decimal   `json:"total" example:"149.97"`
	FulfillmentStatus int16             `json:"fulfillment_status" example:"0"`
	Items             []PurchaseItemDTO `json:"items"`
}
