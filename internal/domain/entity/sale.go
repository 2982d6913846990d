package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta inmediata de punto de venta. No tiene máquina
// de estados: queda finalizada en su creación.
type Sale struct {
	ID        string
	Date      time.Time
	Total     decimal.Decimal
	Advance   decimal.Decimal // adelanto
	BranchID  string
	UserID    string
	ClientID  *string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaleItem línea de una venta con precio unitario congelado al crearla.
type SaleItem struct {
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
