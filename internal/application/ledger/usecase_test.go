package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/internal/domain/entity"
	"github.com/jmcalvo/puntoventa-api/internal/testutil"
)

func newFixture(t *testing.T) (*testutil.Store, *UseCase) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedBranch("suc-1")
	return store, NewUseCase(store.Runner(), store.Repos())
}

func TestCrearAsientoManual(t *testing.T) {
	store, uc := newFixture(t)

	out, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionExpense,
		Amount:   decimal.RequireFromString("45.50"),
		Reason:   "Compra de insumos de limpieza",
		Date:     "2026-09-01",
		BranchID: "suc-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CategoryManual, out.Category)
	assert.Equal(t, entity.TransactionExpense, out.Type)
	assert.Equal(t, 1, store.TransactionCount())
}

func TestCrearAsientoSucursalInexistente(t *testing.T) {
	store, uc := newFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionIncome,
		Amount:   decimal.RequireFromString("10"),
		Reason:   "Ingreso varios",
		Date:     "2026-09-01",
		BranchID: "no-existe",
	})
	require.ErrorIs(t, err, domain.ErrBranchNotFound)
	assert.Equal(t, 0, store.TransactionCount())
}

func TestCrearAsientoVentaInexistente(t *testing.T) {
	store, uc := newFixture(t)
	saleID := "venta-fantasma"

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionIncome,
		Amount:   decimal.RequireFromString("10"),
		Reason:   "Cobro adicional",
		Date:     "2026-09-01",
		SaleID:   &saleID,
		BranchID: "suc-1",
	})
	require.ErrorIs(t, err, domain.ErrSaleNotFound)
	assert.Equal(t, 0, store.TransactionCount())
}

func TestCrearAsientoFechaInvalida(t *testing.T) {
	_, uc := newFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionIncome,
		Amount:   decimal.RequireFromString("10"),
		Reason:   "Ingreso varios",
		Date:     "01/09/2026",
		BranchID: "suc-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarAsiento(t *testing.T) {
	_, uc := newFixture(t)

	created, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionIncome,
		Amount:   decimal.RequireFromString("10"),
		Reason:   "Ingreso varios",
		Date:     "2026-09-01",
		BranchID: "suc-1",
	})
	require.NoError(t, err)

	nuevoMonto := decimal.RequireFromString("25")
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateTransactionRequest{
		Amount: &nuevoMonto,
	})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(nuevoMonto))
	// La categoría no cambia en una actualización escalar.
	assert.Equal(t, entity.CategoryManual, out.Category)
}

func TestEliminarAsiento(t *testing.T) {
	store, uc := newFixture(t)

	created, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionIncome,
		Amount:   decimal.RequireFromString("10"),
		Reason:   "Ingreso varios",
		Date:     "2026-09-01",
		BranchID: "suc-1",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, 0, store.TransactionCount())

	_, err = uc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
