package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// Confirm entrega una orden pendiente (Pendiente -> Entregado). Si queda
// saldo por pagar (total - adelanto) registra un único asiento de ingreso
// por ese saldo. No toca stock: quedó reservado desde la creación.
//
// Usa el alcance de manejo manual porque cada estado encontrado produce un
// error distinto hacia el cliente antes de decidir commit o rollback.
func (uc *UseCase) Confirm(ctx context.Context, id string) (*dto.OrderResponse, error) {
	sc, err := uc.runner.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("iniciar transacción: %w", err)
	}
	r := sc.Repos()

	order, err := r.Orders.GetByID(id)
	if err != nil {
		_ = sc.Rollback(ctx)
		return nil, err
	}
	if order == nil {
		_ = sc.Rollback(ctx)
		return nil, domain.ErrNotFound
	}
	if err := entity.ValidateTransition(order.Status, entity.OrderStatusDelivered); err != nil {
		_ = sc.Rollback(ctx)
		return nil, err
	}

	now := time.Now()
	order.Status = entity.OrderStatusDelivered
	order.UpdatedAt = now
	if err := r.Orders.Update(order); err != nil {
		_ = sc.Rollback(ctx)
		return nil, err
	}

	remaining := order.Total.Sub(order.Advance)
	if remaining.IsPositive() {
		entry := &entity.Transaction{
			ID:        uuid.New().String(),
			Type:      entity.TransactionIncome,
			Category:  entity.CategorySale,
			Amount:    remaining,
			Reason:    fmt.Sprintf("Venta completa de la orden %s", order.ID),
			Date:      now,
			OrderID:   &order.ID,
			BranchID:  order.BranchID,
			CreatedAt: now,
		}
		if err := r.Transactions.Create(entry); err != nil {
			_ = sc.Rollback(ctx)
			return nil, err
		}
	}

	resp, err := buildResponse(r, order)
	if err != nil {
		_ = sc.Rollback(ctx)
		return nil, err
	}
	if err := sc.Commit(ctx); err != nil {
		return nil, fmt.Errorf("confirmar orden: %w", err)
	}
	return resp, nil
}

// Cancel cancela una orden pendiente: marca Cancelado, resetea el adelanto
// a cero, devuelve al stock todas las líneas, elimina los asientos previos
// de la orden y deja un asiento en cero como rastro de la cancelación.
func (uc *UseCase) Cancel(ctx context.Context, id string) error {
	sc, err := uc.runner.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	r := sc.Repos()

	order, err := r.Orders.GetByID(id)
	if err != nil {
		_ = sc.Rollback(ctx)
		return err
	}
	if order == nil {
		_ = sc.Rollback(ctx)
		return domain.ErrNotFound
	}
	if err := entity.ValidateTransition(order.Status, entity.OrderStatusCancelled); err != nil {
		_ = sc.Rollback(ctx)
		return err
	}

	now := time.Now()
	order.Status = entity.OrderStatusCancelled
	order.Advance = decimal.Zero
	order.UpdatedAt = now
	if err := r.Orders.Update(order); err != nil {
		_ = sc.Rollback(ctx)
		return err
	}
	if err := uc.releaseItems(r, order.ID); err != nil {
		_ = sc.Rollback(ctx)
		return err
	}
	if err := r.Transactions.DeleteByOrder(order.ID); err != nil {
		_ = sc.Rollback(ctx)
		return err
	}
	// Asiento en cero: rastro auditable de la cancelación.
	entry := &entity.Transaction{
		ID:        uuid.New().String(),
		Type:      entity.TransactionExpense,
		Category:  entity.CategoryRefund,
		Amount:    decimal.Zero,
		Reason:    fmt.Sprintf("Cancelación de la orden %s", order.ID),
		Date:      now,
		OrderID:   &order.ID,
		BranchID:  order.BranchID,
		CreatedAt: now,
	}
	if err := r.Transactions.Create(entry); err != nil {
		_ = sc.Rollback(ctx)
		return err
	}
	if err := sc.Commit(ctx); err != nil {
		return fmt.Errorf("cancelar orden: %w", err)
	}
	return nil
}
