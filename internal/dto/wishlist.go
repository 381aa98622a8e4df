package dto

import "time"

type WishlistItemDTO struct {
	ProductID int       `json:"product_id" example:"12"`
	Name      string    `json:"name" example:"Mechanical Keyboard"`
	Category  string    `json:"category" example:"Electronics"`
	AddedAt   time.Time `json:"added_at"`
}

type WishlistChangeResponseDTO struct {
	Changed bool `json:"changed"`
}
