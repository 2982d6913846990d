package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero positivo")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Integridad referencial en creación/actualización de ventas y órdenes.
	ErrClientNotFound     = errors.New("cliente no existe")
	ErrBranchNotFound     = errors.New("sucursal no existe")
	ErrProductNotFound    = errors.New("producto no existe")
	ErrSaleNotFound       = errors.New("venta no existe")
	ErrUserBranchMismatch = errors.New("usuario no existe o no pertenece a la sucursal especificada")

	// Transiciones de estado de la orden.
	ErrOrderDelivered       = errors.New("la orden ya ha sido entregada")
	ErrOrderCancelled       = errors.New("no se puede confirmar una orden cancelada")
	ErrCancelDeliveredOrder = errors.New("no se puede cancelar una orden ya entregada")
	ErrInvalidTransition    = errors.New("transición de estado inválida")
)
