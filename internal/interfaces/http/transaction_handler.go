package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/application/ledger"
	"github.com/jmcalvo/puntoventa-api/pkg/logger"
)

// TransactionHandler maneja las peticiones HTTP del libro contable (protegido).
// Solo crea asientos manuales; los asientos de ventas y órdenes los generan
// sus propios casos de uso.
type TransactionHandler struct {
	uc  *ledger.UseCase
	log *logger.Logger
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.UseCase, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, log: log}
}

// Create registra un asiento manual de caja.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un asiento.
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// List lista asientos, opcionalmente por sucursal.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), c.Query("branch_id"), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update actualiza los campos escalares de un asiento.
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete elimina un asiento.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
