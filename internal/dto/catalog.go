package dto

import "github.com/shopspring/decimal"

type ProductDTO struct {
	ID          int    `json:"id" example:"12"`
	Name        string `json:"name" example:"Mechanical Keyboard"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty" example:"electronics"`
}

type ProductCreateRequestDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type SellerOfferDTO struct {
	SellerID int             `json:"seller_id" example:"3"`
	Quantity int             `json:"quantity" example:"10"`
	Price    decimal.Decimal `json:"price" example:"49.99"`
}

type InventoryItemDTO struct {
	ProductID int             `json:"product_id" example:"12"`
	Quantity  int             `json:"quantity" example:"10"`
	Price     decimal.Decimal `json:"price" example:"49.99"`
}

type InventoryUpsertRequestDTO struct {
	ProductID int             `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
