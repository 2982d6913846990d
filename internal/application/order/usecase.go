// Package order implementa el flujo de órdenes diferidas: creación,
// confirmación (entrega), cancelación, actualización y eliminación, todas
// como unidades de trabajo atómicas que mantienen consistentes el stock,
// las líneas, los asientos contables y el estado de la orden.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/application/stock"
	"github.com/jmcalvo/puntoventa-api/internal/application/tx"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// Formatos de fecha y hora de entrega.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// UseCase casos de uso de órdenes. Las lecturas usan repos atados al pool;
// toda mutación corre dentro del coordinador transaccional.
type UseCase struct {
	runner tx.Runner
	repos  tx.Repos
	ledger stock.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner tx.Runner, repos tx.Repos) *UseCase {
	return &UseCase{runner: runner, repos: repos}
}

// Create valida cliente, sucursal y usuario, reserva stock por cada línea
// con precio congelado y registra el adelanto como asiento de ingreso.
// Cualquier falla deja la base sin orden, sin líneas, sin cambio de stock
// y sin asientos.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Total.IsNegative() || in.Advance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	deliveryDate, err := time.Parse(dateLayout, in.DeliveryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse(timeLayout, in.DeliveryTime); err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		DeliveryDate: deliveryDate,
		DeliveryTime: in.DeliveryTime,
		Status:       entity.OrderStatusPending,
		Total:        in.Total,
		Advance:      in.Advance,
		BranchID:     in.BranchID,
		UserID:       in.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var resp *dto.OrderResponse
	err = uc.runner.Run(ctx, func(r tx.Repos) error {
		client, err := r.Clients.GetByID(in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		if err := checkBranchUser(r, in.BranchID, in.UserID); err != nil {
			return err
		}
		if err := r.Orders.Create(order); err != nil {
			return err
		}
		if err := uc.addItems(r, order.ID, in.Items); err != nil {
			return err
		}
		if in.Advance.IsPositive() {
			entry := &entity.Transaction{
				ID:        uuid.New().String(),
				Type:      entity.TransactionIncome,
				Category:  entity.CategoryAdvance,
				Amount:    in.Advance,
				Reason:    fmt.Sprintf("Adelanto de la orden %s", order.ID),
				Date:      now,
				OrderID:   &order.ID,
				BranchID:  in.BranchID,
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

// GetByID retorna la orden con cliente, líneas y asientos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repos.Orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return buildResponse(uc.repos, order)
}

// List retorna las órdenes paginadas con sus relaciones.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*dto.OrderResponse, error) {
	orders, err := uc.repos.Orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp, err := buildResponse(uc.repos, o)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// addItems valida cada producto, reserva su stock y persiste la línea con
// el precio vigente congelado. Se usa en Create y en el reemplazo de
// líneas de Update.
func (uc *UseCase) addItems(r tx.Repos, orderID string, items []dto.ItemRequest) error {
	for _, it := range items {
		product, err := r.Products.GetByID(it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if _, err := uc.ledger.Reserve(r.Products, it.ProductID, it.Quantity); err != nil {
			return err
		}
		item := &entity.OrderItem{
			OrderID:   orderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
		}
		if err := r.Orders.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

// releaseItems devuelve al stock las cantidades de todas las líneas
// actuales de la orden.
func (uc *UseCase) releaseItems(r tx.Repos, orderID string) error {
	items, err := r.Orders.ItemsByOrder(orderID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if _, err := uc.ledger.Release(r.Products, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// checkBranchUser verifica que la sucursal exista y que el usuario exista
// y pertenezca a ella.
func checkBranchUser(r tx.Repos, branchID, userID string) error {
	branch, err := r.Branches.GetByID(branchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrBranchNotFound
	}
	user, err := r.Users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.BranchID != branchID {
		return domain.ErrUserBranchMismatch
	}
	return nil
}

// buildResponse arma la respuesta hidratada dentro del mismo alcance que
// la mutación, para que lo devuelto refleje exactamente lo persistido.
func buildResponse(r tx.Repos, order *entity.Order) (*dto.OrderResponse, error) {
	resp := &dto.OrderResponse{
		ID:           order.ID,
		SaleID:       order.SaleID,
		DeliveryDate: order.DeliveryDate.Format(dateLayout),
		DeliveryTime: order.DeliveryTime,
		Status:       string(order.Status),
		Total:        order.Total,
		Advance:      order.Advance,
		BranchID:     order.BranchID,
		UserID:       order.UserID,
		Items:        []dto.ItemResponse{},
		Transactions: []dto.TransactionResponse{},
		CreatedAt:    order.CreatedAt,
	}
	client, err := r.Clients.GetByID(order.ClientID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		resp.Client = &dto.ClientResponse{ID: client.ID, CINIT: client.CINIT, Name: client.Name, Phone: client.Phone}
	}
	items, err := r.Orders.ItemsByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	entries, err := r.Transactions.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	for _, tr := range entries {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
			ID:       tr.ID,
			Type:     tr.Type,
			Category: tr.Category,
			Amount:   tr.Amount,
			Reason:   tr.Reason,
			Date:     tr.Date,
			SaleID:   tr.SaleID,
			OrderID:  tr.OrderID,
			BranchID: tr.BranchID,
		})
	}
	return resp, nil
}
