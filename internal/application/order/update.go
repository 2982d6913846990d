package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/application/tx"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// Update aplica una actualización parcial a la orden. Si llegan líneas
// nuevas, primero libera el stock de las líneas existentes, las elimina y
// luego valida y reserva las nuevas (mismas fallas que Create). Si cambian
// adelanto o total, borra los asientos de su categoría y los recrea con
// los valores nuevos. Todo en un solo alcance atómico.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var resp *dto.OrderResponse
	err := uc.runner.Run(ctx, func(r tx.Repos) error {
		order, err := r.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		if err := applyScalars(r, order, in); err != nil {
			return err
		}
		order.UpdatedAt = now
		if err := r.Orders.Update(order); err != nil {
			return err
		}

		if in.Items != nil {
			if err := uc.releaseItems(r, order.ID); err != nil {
				return err
			}
			if err := r.Orders.DeleteItems(order.ID); err != nil {
				return err
			}
			if err := uc.addItems(r, order.ID, in.Items); err != nil {
				return err
			}
		}

		if in.Advance != nil {
			if err := r.Transactions.DeleteByOrderCategory(order.ID, entity.CategoryAdvance); err != nil {
				return err
			}
			if in.Advance.IsPositive() {
				entry := &entity.Transaction{
					ID:        uuid.New().String(),
					Type:      entity.TransactionIncome,
					Category:  entity.CategoryAdvance,
					Amount:    *in.Advance,
					Reason:    fmt.Sprintf("Adelanto de la orden %s", order.ID),
					Date:      now,
					OrderID:   &order.ID,
					BranchID:  order.BranchID,
					CreatedAt: now,
				}
				if err := r.Transactions.Create(entry); err != nil {
					return err
				}
			}
		}
		if in.Total != nil {
			if err := r.Transactions.DeleteByOrderCategory(order.ID, entity.CategorySale); err != nil {
				return err
			}
			entry := &entity.Transaction{
				ID:        uuid.New().String(),
				Type:      entity.TransactionIncome,
				Category:  entity.CategorySale,
				Amount:    *in.Total,
				Reason:    fmt.Sprintf("Venta completa de la orden %s", order.ID),
				Date:      now,
				OrderID:   &order.ID,
				BranchID:  order.BranchID,
				CreatedAt: now,
			}
			if err := r.Transactions.Create(entry); err != nil {
				return err
			}
		}

		resp, err = buildResponse(r, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// applyScalars mezcla los campos escalares provistos sobre la orden,
// validando referencias cuando cambian.
func applyScalars(r tx.Repos, order *entity.Order, in dto.UpdateOrderRequest) error {
	if in.ClientID != nil {
		client, err := r.Clients.GetByID(*in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		order.ClientID = *in.ClientID
	}
	if in.SaleID != nil {
		order.SaleID = in.SaleID
	}
	if in.DeliveryDate != nil {
		d, err := time.Parse(dateLayout, *in.DeliveryDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		order.DeliveryDate = d
	}
	if in.DeliveryTime != nil {
		if _, err := time.Parse(timeLayout, *in.DeliveryTime); err != nil {
			return domain.ErrInvalidInput
		}
		order.DeliveryTime = *in.DeliveryTime
	}
	if in.BranchID != nil || in.UserID != nil {
		branchID := order.BranchID
		if in.BranchID != nil {
			branchID = *in.BranchID
		}
		userID := order.UserID
		if in.UserID != nil {
			userID = *in.UserID
		}
		if err := checkBranchUser(r, branchID, userID); err != nil {
			return err
		}
		order.BranchID = branchID
		order.UserID = userID
	}
	if in.Total != nil {
		if in.Total.IsNegative() {
			return domain.ErrInvalidInput
		}
		order.Total = *in.Total
	}
	if in.Advance != nil {
		if in.Advance.IsNegative() {
			return domain.ErrInvalidInput
		}
		order.Advance = *in.Advance
	}
	return nil
}

// Delete elimina la orden devolviendo su stock y borrando líneas y
// asientos asociados, todo o nada.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.runner.Run(ctx, func(r tx.Repos) error {
		order, err := r.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		// Una orden cancelada ya devolvió su stock; liberarlo otra vez lo
		// inflaría.
		if order.Status != entity.OrderStatusCancelled {
			if err := uc.releaseItems(r, order.ID); err != nil {
				return err
			}
		}
		if err := r.Transactions.DeleteByOrder(order.ID); err != nil {
			return err
		}
		if err := r.Orders.DeleteItems(order.ID); err != nil {
			return err
		}
		return r.Orders.Delete(order.ID)
	})
}
