package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro contable.
const (
	TransactionIncome  = "Ingreso"
	TransactionExpense = "Egreso"
)

// Categorías de transacción. Distinguen el origen de cada asiento por
// registro padre (venta u orden) en lugar de comparar prefijos del motivo,
// de modo que las actualizaciones puedan borrar y recrear asientos por
// categoría sin depender de texto libre.
const (
	CategoryAdvance = "adelanto"   // adelanto pagado al crear venta/orden
	CategorySale    = "venta"      // total o saldo de la venta/orden
	CategoryRefund  = "devolucion" // registro de cancelación
	CategoryManual  = "manual"     // asiento manual de caja
)

// Transaction es un asiento del libro contable: un movimiento de dinero
// ligado siempre a una sucursal y opcionalmente a una venta o una orden.
// Toda mutación de venta/orden que mueve dinero produce exactamente un
// asiento dentro del mismo alcance atómico.
type Transaction struct {
	ID        string
	Type      string // Ingreso | Egreso
	Category  string
	Amount    decimal.Decimal
	Reason    string
	Date      time.Time
	SaleID    *string
	OrderID   *string
	BranchID  string
	CreatedAt time.Time
}
