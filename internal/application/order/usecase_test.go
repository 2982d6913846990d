package order

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

func createRequest(items ...dto.ItemRequest) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ClientID:     "cli-1",
		DeliveryDate: "2026-09-10",
		DeliveryTime: "14:30",
		Total:        decimal.RequireFromString("100"),
		Advance:      decimal.RequireFromString("30"),
		BranchID:     "suc-1",
		UserID:       "user-1",
		Items:        items,
	}
}

func TestCrearOrdenReservaStockYRegistraAdelanto(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	resp, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 3},
	))
	require.NoError(t, err)

	assert.Equal(t, string(entity.OrderStatusPending), resp.Status)
	assert.Equal(t, 7, store.StockOf("prod-1"))
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("25")))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, entity.CategoryAdvance, resp.Transactions[0].Category)
	assert.True(t, resp.Transactions[0].Amount.Equal(decimal.RequireFromString("30")))
}

func TestCrearOrdenSinAdelantoNoAsienta(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 1})
	in.Advance = decimal.Zero

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, resp.Transactions)
	assert.Equal(t, 0, store.TransactionCount())
}

func TestCrearOrdenFallaEsAtomica(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")
	store.SeedProduct("prod-2", "40", 1, "suc-1")

	_, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 3},
		dto.ItemRequest{ProductID: "prod-2", Quantity: 5},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La primera reserva también se revierte.
	assert.Equal(t, 10, store.StockOf("prod-1"))
	assert.Equal(t, 1, store.StockOf("prod-2"))
	assert.Equal(t, 0, store.TransactionCount())

	list, err := uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCrearOrdenClienteInexistente(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 1})
	in.ClientID = "no-existe"

	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
	assert.Equal(t, 10, store.StockOf("prod-1"))
}

func TestCrearOrdenUsuarioDeOtraSucursal(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedBranch("suc-2")
	store.SeedUser("user-2", "suc-2")
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 1})
	in.UserID = "user-2"

	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrUserBranchMismatch)
}

func TestCrearOrdenFechaInvalida(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 1})
	in.DeliveryDate = "10/09/2026"

	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfirmarOrdenAsientaElSaldo(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 2},
	))
	require.NoError(t, err)

	resp, err := uc.Confirm(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, string(entity.OrderStatusDelivered), resp.Status)
	// El stock quedó reservado desde la creación; confirmar no lo toca.
	assert.Equal(t, 8, store.StockOf("prod-1"))

	// Adelanto de 30 + saldo de 70.
	require.Len(t, resp.Transactions, 2)
	var saldo dto.TransactionResponse
	for _, tr := range resp.Transactions {
		if tr.Category == entity.CategorySale {
			saldo = tr
		}
	}
	assert.True(t, saldo.Amount.Equal(decimal.RequireFromString("70")))
	assert.Equal(t, entity.TransactionIncome, saldo.Type)
}

func TestConfirmarOrdenSinSaldoNoAsienta(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	in := createRequest(dto.ItemRequest{ProductID: "prod-1", Quantity: 1})
	in.Total = decimal.RequireFromString("30") // total == adelanto

	created, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	resp, err := uc.Confirm(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, entity.CategoryAdvance, resp.Transactions[0].Category)
}

func TestConfirmarOrdenDosVeces(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 1},
	))
	require.NoError(t, err)

	_, err = uc.Confirm(context.Background(), created.ID)
	require.NoError(t, err)
	entries := store.TransactionCount()

	_, err = uc.Confirm(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrOrderDelivered)
	assert.Equal(t, entries, store.TransactionCount())
}

func TestCancelarOrdenRestauraStockYAnulaAsientos(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 3},
	))
	require.NoError(t, err)
	require.Equal(t, 7, store.StockOf("prod-1"))

	err = uc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, store.StockOf("prod-1"))

	resp, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCancelled), resp.Status)
	assert.True(t, resp.Advance.IsZero())

	// Solo queda el asiento en cero de la cancelación.
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, entity.CategoryRefund, resp.Transactions[0].Category)
	assert.True(t, resp.Transactions[0].Amount.IsZero())
}

func TestCancelarOrdenEntregada(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 1},
	))
	require.NoError(t, err)
	_, err = uc.Confirm(context.Background(), created.ID)
	require.NoError(t, err)

	err = uc.Cancel(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrCancelDeliveredOrder)
	assert.Equal(t, 9, store.StockOf("prod-1"))
}

func TestCancelarOrdenCancelada(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 2},
	))
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(context.Background(), created.ID))

	// Re-cancelar no puede devolver el stock otra vez.
	err = uc.Cancel(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrOrderCancelled)
	assert.Equal(t, 10, store.StockOf("prod-1"))
}

func TestActualizarOrdenReemplazaLineas(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")
	store.SeedProduct("prod-2", "40", 5, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 4},
	))
	require.NoError(t, err)
	require.Equal(t, 6, store.StockOf("prod-1"))

	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Items: []dto.ItemRequest{{ProductID: "prod-2", Quantity: 2}},
	})
	require.NoError(t, err)

	// Las líneas viejas devuelven su stock, las nuevas reservan el suyo.
	assert.Equal(t, 10, store.StockOf("prod-1"))
	assert.Equal(t, 3, store.StockOf("prod-2"))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "prod-2", resp.Items[0].ProductID)
}

func TestActualizarOrdenListaEquivalenteNoCambiaStock(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")
	store.SeedProduct("prod-2", "40", 5, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 4},
		dto.ItemRequest{ProductID: "prod-2", Quantity: 2},
	))
	require.NoError(t, err)
	require.Equal(t, 6, store.StockOf("prod-1"))
	require.Equal(t, 3, store.StockOf("prod-2"))

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Items: []dto.ItemRequest{
			{ProductID: "prod-1", Quantity: 4},
			{ProductID: "prod-2", Quantity: 2},
		},
	})
	require.NoError(t, err)

	// Reemplazar las líneas por una lista equivalente deja el cambio neto
	// de stock en cero para todos los productos.
	assert.Equal(t, 6, store.StockOf("prod-1"))
	assert.Equal(t, 3, store.StockOf("prod-2"))
}

func TestActualizarOrdenAdelantoRecreaAsiento(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 1},
	))
	require.NoError(t, err)

	nuevo := decimal.RequireFromString("50")
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Advance: &nuevo,
	})
	require.NoError(t, err)

	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, entity.CategoryAdvance, resp.Transactions[0].Category)
	assert.True(t, resp.Transactions[0].Amount.Equal(nuevo))
}

func TestEliminarOrdenPendienteLiberaStock(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 3},
	))
	require.NoError(t, err)

	err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 10, store.StockOf("prod-1"))
	assert.Equal(t, 0, store.TransactionCount())

	_, err = uc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarOrdenCanceladaNoDuplicaStock(t *testing.T) {
	store, uc := newFixture(t)
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	created, err := uc.Create(context.Background(), createRequest(
		dto.ItemRequest{ProductID: "prod-1", Quantity: 3},
	))
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(context.Background(), created.ID))
	require.Equal(t, 10, store.StockOf("prod-1"))

	err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	// Cancelar ya devolvió el stock; eliminar no lo infla.
	assert.Equal(t, 10, store.StockOf("prod-1"))
}
