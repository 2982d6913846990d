package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmcalvo/puntoventa-api/internal/domain"
)

// OrderStatus estado de una orden diferida.
type OrderStatus string

// Estados de la orden. Pendiente es el inicial; Entregado y Cancelado
// son terminales.
const (
	OrderStatusPending   OrderStatus = "Pendiente"
	OrderStatusDelivered OrderStatus = "Entregado"
	OrderStatusCancelled OrderStatus = "Cancelado"
)

// orderTransitions tabla de transiciones válidas del estado de la orden.
// Los estados terminales no aparecen como origen.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusDelivered, OrderStatusCancelled},
}

// Valid indica si el valor es un estado conocido.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0 && s.Valid()
}

// CanTransition consulta la tabla de transiciones.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// ValidateTransition valida una transición de estado y retorna el error
// de dominio específico que la operación debe exponer al cliente.
// Centraliza los chequeos que antes estaban repartidos por operación.
func ValidateTransition(from, to OrderStatus) error {
	if !from.Valid() || !to.Valid() {
		return domain.ErrInvalidTransition
	}
	if from.CanTransition(to) {
		return nil
	}
	switch {
	case from == OrderStatusDelivered && to == OrderStatusDelivered:
		return domain.ErrOrderDelivered
	case from == OrderStatusCancelled && (to == OrderStatusDelivered || to == OrderStatusCancelled):
		return domain.ErrOrderCancelled
	case from == OrderStatusDelivered && to == OrderStatusCancelled:
		return domain.ErrCancelDeliveredOrder
	}
	return domain.ErrInvalidTransition
}

// Order representa una orden diferida y prepagada de un cliente.
// Mientras está Pendiente el stock de sus ítems permanece reservado
// (descontado desde la creación); al cancelarla o eliminarla se restaura.
// SaleID solo se llena si la orden se materializa en una venta.
type Order struct {
	ID           string
	SaleID       *string
	ClientID     string
	DeliveryDate time.Time
	DeliveryTime string // HH:MM
	Status       OrderStatus
	Total        decimal.Decimal
	Advance      decimal.Decimal // adelanto pagado al crear
	BranchID     string
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem línea de una orden: cantidad y precio unitario capturado al
// momento de la transacción (nunca se recalcula con el precio vigente).
type OrderItem struct {
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
