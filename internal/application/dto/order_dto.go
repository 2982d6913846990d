package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest línea solicitada para una orden o venta.
type ItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	ClientID     string          `json:"client_id" validate:"required"`
	DeliveryDate string          `json:"delivery_date" validate:"required"` // YYYY-MM-DD
	DeliveryTime string          `json:"delivery_time" validate:"required"` // HH:MM
	Total        decimal.Decimal `json:"total"`
	Advance      decimal.Decimal `json:"advance"`
	BranchID     string          `json:"branch_id" validate:"required"`
	UserID       string          `json:"user_id" validate:"required"`
	Items        []ItemRequest   `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest body para PUT /api/orders/:id. Los campos nil se
// conservan; Items nil conserva las líneas actuales, Items no-nil las
// reemplaza por completo (liberando el stock previo y reservando el nuevo).
type UpdateOrderRequest struct {
	ClientID     *string          `json:"client_id"`
	SaleID       *string          `json:"sale_id"`
	DeliveryDate *string          `json:"delivery_date"`
	DeliveryTime *string          `json:"delivery_time"`
	Total        *decimal.Decimal `json:"total"`
	Advance      *decimal.Decimal `json:"advance"`
	BranchID     *string          `json:"branch_id"`
	UserID       *string          `json:"user_id"`
	Items        []ItemRequest    `json:"items" validate:"omitempty,min=1,dive"`
}

// ItemResponse línea con el precio unitario congelado en la transacción.
type ItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse orden con cliente, líneas y asientos asociados.
type OrderResponse struct {
	ID           string                `json:"id"`
	SaleID       *string               `json:"sale_id,omitempty"`
	Client       *ClientResponse       `json:"client,omitempty"`
	DeliveryDate string                `json:"delivery_date"`
	DeliveryTime string                `json:"delivery_time"`
	Status       string                `json:"status"`
	Total        decimal.Decimal       `json:"total"`
	Advance      decimal.Decimal       `json:"advance"`
	BranchID     string                `json:"branch_id"`
	UserID       string                `json:"user_id"`
	Items        []ItemResponse        `json:"items"`
	Transactions []TransactionResponse `json:"transactions"`
	CreatedAt    time.Time             `json:"created_at"`
}
