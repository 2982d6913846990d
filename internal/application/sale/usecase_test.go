package sale

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
	store.SeedUser("user-1", "suc-1")
	store.SeedClient("cli-1")
	return store, NewUseCase(store.Runner(), store.Repos())
}

func createRequest(items ...dto.ItemRequest) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Total:    decimal.RequireFromString("100"),
		Advance:  decimal.RequireFromString("20"),
		BranchID: "suc-1",
		UserID:   "user-1",
		Items:    items,
	}
}

func TestCrearVentaDescuentaStockYAsienta(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	clientID := "cli-1"
	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 4})
	in.ClientID = &clientID

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 6, store.StockOf("prod-1"))
	require.NotNil(t, resp.Client)
	assert.Equal(t, "cli-1", resp.Client.ID)

	// Adelanto + venta completa.
	require.Len(t, resp.Transactions, 2)
	categorias := map[string]decimal.Decimal{}
	for _, tr := range resp.Transactions {
		assert.Equal(t, entity.TransactionIncome, tr.Type)
		categorias[tr.Category] = tr.Amount
	}
	assert.True(t, categorias[entity.CategoryAdvance].Equal(decimal.RequireFromString("20")))
	assert.True(t, categorias[entity.CategorySale].Equal(decimal.RequireFromString("100")))
}

func TestCrearVentaSinClienteNiAdelanto(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 1})
	in.Advance = decimal.Zero

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Nil(t, resp.Client)
	// Solo el asiento del total.
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, entity.CategorySale, resp.Transactions[0].Category)
}

func TestCrearVentaStockInsuficienteEsAtomica(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")
	store.SeedProduct("prod-2", "40", 2, "suc-1")

	_, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 2},
		dto.ItemRequest{ProductID: "prod-2", Quantity: 3},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, store.StockOf("prod-1"))
	assert.Equal(t, 2, store.StockOf("prod-2"))
	assert.Equal(t, 0, store.TransactionCount())

	list, err := uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCrearVentaCantidadInvalida(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	_, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 0},
	))
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 10, store.StockOf("prod-1"))
}

func TestActualizarVentaReemplazoSimetrico(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 5, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 4},
	))
	require.NoError(t, err)
	require.Equal(t, 1, store.StockOf("prod-1"))

	// Con reemplazo simétrico el stock liberado (4) queda disponible para
	// la nueva reserva: 5 unidades caben aunque solo quedaba 1.
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Items: []dto.ItemRequest{{ProductID: "prod-1", Quantity: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, store.StockOf("prod-1"))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestActualizarVentaTotalRecreaAsiento(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 1},
	))
	require.NoError(t, err)

	nuevo := decimal.RequireFromString("150")
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Total: &nuevo,
	})
	require.NoError(t, err)

	var ventas []dto.TransactionResponse
	for _, tr := range resp.Transactions {
		if tr.Category == entity.CategorySale {
			ventas = append(ventas, tr)
		}
	}
	require.Len(t, ventas, 1)
	assert.True(t, ventas[0].Amount.Equal(nuevo))
}

func TestActualizarVentaFallaEsAtomica(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 5, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 2},
	))
	require.NoError(t, err)
	require.Equal(t, 3, store.StockOf("prod-1"))

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateSaleRequest{
		Items: []dto.ItemRequest{{ProductID: "prod-1", Quantity: 20}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La liberación intermedia también se revierte.
	assert.Equal(t, 3, store.StockOf("prod-1"))
	resp, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
}

func TestEliminarVentaRestauraStockYBorraAsientos(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")
	store.SeedProduct("prod-2", "40", 5, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 3},
		dto.ItemRequest{ProductID: "prod-2", Quantity: 2},
	))
	require.NoError(t, err)
	require.Equal(t, 7, store.StockOf("prod-1"))
	require.Equal(t, 3, store.StockOf("prod-2"))

	err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, store.StockOf("prod-1"))
	assert.Equal(t, 5, store.StockOf("prod-2"))
	assert.Equal(t, 0, store.TransactionCount())

	_, err = uc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarVentaInexistente(t *testing.T) {
	_, uc := newFixture(t)
	err := uc.Delete(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
