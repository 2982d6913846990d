package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

func TestOrderStatus_TablaDeTransiciones(t *testing.T) {
	casos := []struct {
		nombre string
		from   entity.OrderStatus
		to     entity.OrderStatus
		ok     bool
	}{
		{"pendiente a entregado", entity.OrderStatusPending, entity.OrderStatusDelivered, true},
		{"pendiente a cancelado", entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{"entregado a cancelado", entity.OrderStatusDelivered, entity.OrderStatusCancelled, false},
		{"entregado a entregado", entity.OrderStatusDelivered, entity.OrderStatusDelivered, false},
		{"cancelado a entregado", entity.OrderStatusCancelled, entity.OrderStatusDelivered, false},
		{"cancelado a cancelado", entity.OrderStatusCancelled, entity.OrderStatusCancelled, false},
		{"cancelado a pendiente", entity.OrderStatusCancelled, entity.OrderStatusPending, false},
		{"entregado a pendiente", entity.OrderStatusDelivered, entity.OrderStatusPending, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.ok, c.from.CanTransition(c.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, entity.OrderStatusPending.Terminal())
	assert.True(t, entity.OrderStatusDelivered.Terminal())
	assert.True(t, entity.OrderStatusCancelled.Terminal())
}

func TestValidateTransition_ErroresEspecificos(t *testing.T) {
	// Cada transición inválida expone el error de dominio que la operación
	// correspondiente (confirmar/cancelar) debe devolver al cliente.
	assert.ErrorIs(t,
		entity.ValidateTransition(entity.OrderStatusDelivered, entity.OrderStatusDelivered),
		domain.ErrOrderDelivered)
	assert.ErrorIs(t,
		entity.ValidateTransition(entity.OrderStatusCancelled, entity.OrderStatusDelivered),
		domain.ErrOrderCancelled)
	assert.ErrorIs(t,
		entity.ValidateTransition(entity.OrderStatusCancelled, entity.OrderStatusCancelled),
		domain.ErrOrderCancelled)
	assert.ErrorIs(t,
		entity.ValidateTransition(entity.OrderStatusDelivered, entity.OrderStatusCancelled),
		domain.ErrCancelDeliveredOrder)
	assert.ErrorIs(t,
		entity.ValidateTransition(entity.OrderStatus("otro"), entity.OrderStatusDelivered),
		domain.ErrInvalidTransition)

	assert.NoError(t, entity.ValidateTransition(entity.OrderStatusPending, entity.OrderStatusDelivered))
	assert.NoError(t, entity.ValidateTransition(entity.OrderStatusPending, entity.OrderStatusCancelled))
}
