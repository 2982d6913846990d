// Package sale implementa el flujo de ventas inmediatas de punto de venta.
// Una venta queda finalizada en su creación; no hay máquina de estados.
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/application/stock"
	"github.com/jmcalvo/puntoventa-api/internal/application/tx"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

// UseCase casos de uso de ventas.
type UseCase struct {
	runner tx.Runner
	repos  tx.Repos
	ledger stock.Ledger
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner tx.Runner, repos tx.Repos) *UseCase {
	return &UseCase{runner: runner, repos: repos}
}

// Create valida sucursal, usuario y cliente opcional, reserva stock por
// cada línea con precio congelado y registra los asientos de ingreso: el
// adelanto si es positivo y siempre el total de la venta. Todo o nada.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Total.IsNegative() || in.Advance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Date:      now,
		Total:     in.Total,
		Advance:   in.Advance,
		BranchID:  in.BranchID,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var resp *dto.SaleResponse
	err := uc.runner.Run(ctx, func(r tx.Repos) error {
		if err := checkBranchUser(r, in.BranchID, in.UserID); err != nil {
			return err
		}
		if in.ClientID != nil {
			client, err := r.Clients.GetByID(*in.ClientID)
			if err != nil {
				return err
			}
			if client == nil {
				return domain.ErrClientNotFound
			}
			sale.ClientID = in.ClientID
		}
		if err := r.Sales.Create(sale); err != nil {
			return err
		}
		if err := uc.addItems(r, sale.ID, in.Items); err != nil {
			return err
		}
		if in.Advance.IsPositive() {
			if err := uc.appendEntry(r, sale, entity.CategoryAdvance, in.Advance,
				fmt.Sprintf("Adelanto de la venta %s", sale.ID), now); err != nil {
				return err
			}
		}
		if err := uc.appendEntry(r, sale, entity.CategorySale, in.Total,
			fmt.Sprintf("Venta completa de la venta %s", sale.ID), now); err != nil {
			return err
		}
		var err error
		resp, err = buildResponse(r, sale)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update aplica una actualización parcial. El reemplazo de líneas es
// simétrico: libera primero el stock de las líneas existentes, las borra y
// recién entonces valida y reserva las nuevas. Si cambian adelanto o
// total, borra los asientos de su categoría y los recrea.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	var resp *dto.SaleResponse
	err := uc.runner.Run(ctx, func(r tx.Repos) error {
		sale, err := r.Sales.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		if in.BranchID != nil || in.UserID != nil {
			branchID := sale.BranchID
			if in.BranchID != nil {
				branchID = *in.BranchID
			}
			userID := sale.UserID
			if in.UserID != nil {
				userID = *in.UserID
			}
			if err := checkBranchUser(r, branchID, userID); err != nil {
				return err
			}
			sale.BranchID = branchID
			sale.UserID = userID
		}
		if in.ClientID != nil {
			client, err := r.Clients.GetByID(*in.ClientID)
			if err != nil {
				return err
			}
			if client == nil {
				return domain.ErrClientNotFound
			}
			sale.ClientID = in.ClientID
		}
		if in.Total != nil {
			if in.Total.IsNegative() {
				return domain.ErrInvalidInput
			}
			sale.Total = *in.Total
		}
		if in.Advance != nil {
			if in.Advance.IsNegative() {
				return domain.ErrInvalidInput
			}
			sale.Advance = *in.Advance
		}
		sale.UpdatedAt = now
		if err := r.Sales.Update(sale); err != nil {
			return err
		}

		if in.Items != nil {
			if err := uc.releaseItems(r, sale.ID); err != nil {
				return err
			}
			if err := r.Sales.DeleteItems(sale.ID); err != nil {
				return err
			}
			if err := uc.addItems(r, sale.ID, in.Items); err != nil {
				return err
			}
		}

		if in.Advance != nil {
			if err := r.Transactions.DeleteBySaleCategory(sale.ID, entity.CategoryAdvance); err != nil {
				return err
			}
			if in.Advance.IsPositive() {
				if err := uc.appendEntry(r, sale, entity.CategoryAdvance, *in.Advance,
					fmt.Sprintf("Adelanto de la venta %s", sale.ID), now); err != nil {
					return err
				}
			}
		}
		if in.Total != nil {
			if err := r.Transactions.DeleteBySaleCategory(sale.ID, entity.CategorySale); err != nil {
				return err
			}
			if err := uc.appendEntry(r, sale, entity.CategorySale, *in.Total,
				fmt.Sprintf("Venta completa de la venta %s", sale.ID), now); err != nil {
				return err
			}
		}

		resp, err = buildResponse(r, sale)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete elimina la venta devolviendo el stock de cada línea y borrando
// sus asientos; las líneas caen en cascada con la venta.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.runner.Run(ctx, func(r tx.Repos) error {
		sale, err := r.Sales.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if err := uc.releaseItems(r, sale.ID); err != nil {
			return err
		}
		if err := r.Transactions.DeleteBySale(sale.ID); err != nil {
			return err
		}
		return r.Sales.Delete(sale.ID)
	})
}

// GetByID retorna la venta con cliente, líneas y asientos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.repos.Sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return buildResponse(uc.repos, sale)
}

// List retorna las ventas paginadas con sus relaciones.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*dto.SaleResponse, error) {
	sales, err := uc.repos.Sales.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		resp, err := buildResponse(uc.repos, s)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *UseCase) addItems(r tx.Repos, saleID string, items []dto.ItemRequest) error {
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
		item := &entity.SaleItem{
			SaleID:    saleID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
		}
		if err := r.Sales.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

func (uc *UseCase) releaseItems(r tx.Repos, saleID string) error {
	items, err := r.Sales.ItemsBySale(saleID)
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

func (uc *UseCase) appendEntry(r tx.Repos, sale *entity.Sale, category string, amount decimal.Decimal, reason string, now time.Time) error {
	entry := &entity.Transaction{
		ID:        uuid.New().String(),
		Type:      entity.TransactionIncome,
		Category:  category,
		Amount:    amount,
		Reason:    reason,
		Date:      now,
		SaleID:    &sale.ID,
		BranchID:  sale.BranchID,
		CreatedAt: now,
	}
	return r.Transactions.Create(entry)
}

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

func buildResponse(r tx.Repos, sale *entity.Sale) (*dto.SaleResponse, error) {
	resp := &dto.SaleResponse{
		ID:           sale.ID,
		Date:         sale.Date,
		Total:        sale.Total,
		Advance:      sale.Advance,
		BranchID:     sale.BranchID,
		UserID:       sale.UserID,
		Items:        []dto.ItemResponse{},
		Transactions: []dto.TransactionResponse{},
		CreatedAt:    sale.CreatedAt,
	}
	if sale.ClientID != nil {
		client, err := r.Clients.GetByID(*sale.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			resp.Client = &dto.ClientResponse{ID: client.ID, CINIT: client.CINIT, Name: client.Name, Phone: client.Phone}
		}
	}
	items, err := r.Sales.ItemsBySale(sale.ID)
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
	entries, err := r.Transactions.ListBySale(sale.ID)
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
