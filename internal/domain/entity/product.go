package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una sucursal.
// Stock es un entero no negativo; toda mutación de Stock pasa por el
// libro de stock (stock.Ledger) dentro de una transacción; nunca se
// escribe el campo directamente desde un caso de uso.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta vigente
	Stock       int
	ImageURL    string
	BranchID    string // sucursal propietaria
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
