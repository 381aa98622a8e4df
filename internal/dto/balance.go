package dto

import "github.com/shopspring/decimal"

type BalanceResponseDTO struct {
	Balance decimal.Decimal `json:"balance" example:"500.50"`
}

type BalanceChangeRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"100.00"`
}
