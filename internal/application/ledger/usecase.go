// Package ledger implementa los asientos manuales del libro contable:
// ingresos y egresos de caja registrados por fuera de ventas y órdenes.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/application/tx"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// UseCase casos de uso del libro contable.
type UseCase struct {
	runner tx.Runner
	repos  tx.Repos
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner tx.Runner, repos tx.Repos) *UseCase {
	return &UseCase{runner: runner, repos: repos}
}

// Create registra un asiento manual. Corre dentro del coordinador para que
// la verificación de la venta referenciada y la escritura del asiento sean
// un solo alcance: ningún asiento puede quedar apuntando a una venta
// inexistente.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	entry := &entity.Transaction{
		ID:        uuid.New().String(),
		Type:      in.Type,
		Category:  entity.CategoryManual,
		Amount:    in.Amount,
		Reason:    in.Reason,
		Date:      date,
		BranchID:  in.BranchID,
		CreatedAt: time.Now(),
	}
	err = uc.runner.Run(ctx, func(r tx.Repos) error {
		branch, err := r.Branches.GetByID(in.BranchID)
		if err != nil {
			return err
		}
		if branch == nil {
			return domain.ErrBranchNotFound
		}
		if in.SaleID != nil {
			sale, err := r.Sales.GetByID(*in.SaleID)
			if err != nil {
				return err
			}
			if sale == nil {
				return domain.ErrSaleNotFound
			}
			entry.SaleID = in.SaleID
		}
		return r.Transactions.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(entry), nil
}

// GetByID retorna un asiento.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tr, err := uc.repos.Transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(tr), nil
}

// List retorna asientos, opcionalmente filtrados por sucursal, ordenados
// por fecha descendente.
func (uc *UseCase) List(ctx context.Context, branchID string, limit, offset int) ([]*dto.TransactionResponse, error) {
	list, err := uc.repos.Transactions.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, tr := range list {
		out = append(out, toResponse(tr))
	}
	return out, nil
}

// Update actualiza los campos escalares de un asiento.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tr, err := uc.repos.Transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		if *in.Type != entity.TransactionIncome && *in.Type != entity.TransactionExpense {
			return nil, domain.ErrInvalidInput
		}
		tr.Type = *in.Type
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		tr.Amount = *in.Amount
	}
	if in.Reason != nil {
		tr.Reason = *in.Reason
	}
	if err := uc.repos.Transactions.Update(tr); err != nil {
		return nil, err
	}
	return toResponse(tr), nil
}

// Delete elimina un asiento.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	tr, err := uc.repos.Transactions.GetByID(id)
	if err != nil {
		return err
	}
	if tr == nil {
		return domain.ErrNotFound
	}
	return uc.repos.Transactions.Delete(id)
}

func toResponse(tr *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:       tr.ID,
		Type:     tr.Type,
		Category: tr.Category,
		Amount:   tr.Amount,
		Reason:   tr.Reason,
		Date:     tr.Date,
		SaleID:   tr.SaleID,
		OrderID:  tr.OrderID,
		BranchID: tr.BranchID,
	}
}
