package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/transactions (asiento manual).
type CreateTransactionRequest struct {
	Type     string          `json:"type" validate:"required,oneof=Ingreso Egreso"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason" validate:"required"`
	Date     string          `json:"date" validate:"required"` // YYYY-MM-DD
	SaleID   *string         `json:"sale_id"`
	BranchID string          `json:"branch_id" validate:"required"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id.
type UpdateTransactionRequest struct {
	Type   *string          `json:"type" validate:"omitempty,oneof=Ingreso Egreso"`
	Amount *decimal.Decimal `json:"amount"`
	Reason *string          `json:"reason"`
}

// TransactionResponse asiento del libro contable.
type TransactionResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   string          `json:"reason"`
	Date     time.Time       `json:"date"`
	SaleID   *string         `json:"sale_id,omitempty"`
	OrderID  *string         `json:"order_id,omitempty"`
	BranchID string          `json:"branch_id"`
}
