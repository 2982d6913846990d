package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales. ClientID es opcional
// (venta de mostrador sin cliente registrado).
type CreateSaleRequest struct {
	Total    decimal.Decimal `json:"total"`
	Advance  decimal.Decimal `json:"advance"`
	BranchID string          `json:"branch_id" validate:"required"`
	UserID   string          `json:"user_id" validate:"required"`
	ClientID *string         `json:"client_id"`
	Items    []ItemRequest   `json:"items" validate:"required,min=1,dive"`
}

// UpdateSaleRequest body para PUT /api/sales/:id. Semántica de campos nil
// igual que en UpdateOrderRequest.
type UpdateSaleRequest struct {
	Total    *decimal.Decimal `json:"total"`
	Advance  *decimal.Decimal `json:"advance"`
	BranchID *string          `json:"branch_id"`
	UserID   *string          `json:"user_id"`
	ClientID *string          `json:"client_id"`
	Items    []ItemRequest    `json:"items" validate:"omitempty,min=1,dive"`
}

// SaleResponse venta con líneas y asientos asociados.
type SaleResponse struct {
	ID           string                `json:"id"`
	Date         time.Time             `json:"date"`
	Total        decimal.Decimal       `json:"total"`
	Advance      decimal.Decimal       `json:"advance"`
	BranchID     string                `json:"branch_id"`
	UserID       string                `json:"user_id"`
	Client       *ClientResponse       `json:"client,omitempty"`
	Items        []ItemResponse        `json:"items"`
	Transactions []TransactionResponse `json:"transactions"`
	CreatedAt    time.Time             `json:"created_at"`
}
