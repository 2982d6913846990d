package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/application/order"
	"github.com/jmcalvo/puntoventa-api/internal/application/sale"
	apphttp "github.com/jmcalvo/puntoventa-api/internal/interfaces/http"
	"github.com/jmcalvo/puntoventa-api/internal/testutil"
	"github.com/jmcalvo/puntoventa-api/pkg/logger"
)

// newWorkflowApp levanta una app Fiber con los handlers de órdenes y ventas
// sobre el store en memoria, sin middleware de autenticación.
func newWorkflowApp(t *testing.T) (*testutil.Store, *order.UseCase, *sale.UseCase, *fiber.App) {
	t.Helper()
	store := testutil.NewStore()
	store.SeedBranch("suc-1")
	store.SeedUser("user-1", "suc-1")
	store.SeedClient("cli-1")
	store.SeedProduct("prod-1", "25", 10, "suc-1")

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	orderUC := order.NewUseCase(store.Runner(), store.Repos())
	saleUC := sale.NewUseCase(store.Runner(), store.Repos())

	app := fiber.New()
	orderHandler := apphttp.NewOrderHandler(orderUC, log)
	app.Post("/api/orders/:id/cancel", orderHandler.Cancel)
	app.Delete("/api/orders/:id", orderHandler.Delete)
	saleHandler := apphttp.NewSaleHandler(saleUC, log)
	app.Delete("/api/sales/:id", saleHandler.Delete)

	return store, orderUC, saleUC, app
}

func seedOrder(t *testing.T, uc *order.UseCase) string {
	t.Helper()
	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID:     "cli-1",
		DeliveryDate: "2026-09-10",
		DeliveryTime: "14:30",
		Total:        decimal.RequireFromString("100"),
		Advance:      decimal.RequireFromString("30"),
		BranchID:     "suc-1",
		UserID:       "user-1",
		Items:        []dto.ItemRequest{{ProductID: "prod-1", Quantity: 2}},
	})
	require.NoError(t, err)
	return resp.ID
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestCancelarOrden_Retorna200ConMensaje(t *testing.T) {
	_, orderUC, _, app := newWorkflowApp(t)
	id := seedOrder(t, orderUC)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+id+"/cancel", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Orden cancelada exitosamente.", decodeMessage(t, resp))
}

func TestEliminarOrden_Retorna200ConMensaje(t *testing.T) {
	store, orderUC, _, app := newWorkflowApp(t)
	id := seedOrder(t, orderUC)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Orden eliminada con éxito.", decodeMessage(t, resp))
	assert.Equal(t, 10, store.StockOf("prod-1"))
}

func TestEliminarVenta_Retorna200ConMensaje(t *testing.T) {
	_, _, saleUC, app := newWorkflowApp(t)
	created, err := saleUC.Create(context.Background(), dto.CreateSaleRequest{
		Total:    decimal.RequireFromString("50"),
		Advance:  decimal.Zero,
		BranchID: "suc-1",
		UserID:   "user-1",
		Items:    []dto.ItemRequest{{ProductID: "prod-1", Quantity: 2}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/sales/"+created.ID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Venta eliminada con éxito.", decodeMessage(t, resp))
}
