package dto

import "github.com/shopspring/decimal"

type CartItemDTO struct {
	ProductID   int             `json:"product_id" example:"12"`
	Name        string          `json:"name" example:"Mechanical Keyboard"`
	Description string          `json:"description,omitempty"`
	SellerID    int             `json:"seller_id" example:"3"`
	SellerName  string          `json:"seller_name" example:"Ada Lovelace"`
	Quantity    int             `json:"quantity" example:"2"`
	Price       decimal.Decimal `json:"price" example:"49.99"`
	Subtotal    decimal.Decimal `json:"subtotal" example:"99.98"`
}

type CartResponseDTO struct {
	Items []CartItemDTO   `json:"items"`
	Total decimal.Decimal `json:"total" example:"99.98"`
	Count int             `json:"count" example:"2"`
}

type CartAddRequestDTO struct {
	ProductID int  `json:"product_id" validate:"required"`
	SellerID  *int `json:"seller_id,omitempty"`
	Quantity  int  `json:"quantity" example:"1"`
}

type CartUpdateRequestDTO struct {
	ProductID int `json:"product_id" validate:"required"`
	SellerID  int `json:"seller_id" validate:"required"`
	Quantity  int `json:"quantity"`
}

type CartRemoveRequestDTO struct {
	ProductID int `json:"product_id" validate:"required"`
	SellerID  int `json:"seller_id" validate:"required"`
}

type CartQuantityResponseDTO struct {
	Quantity int `json:"quantity" example:"5"`
}
