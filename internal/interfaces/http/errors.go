package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jmcalvo/puntoventa-api/internal/application/dto"
	"github.com/jmcalvo/puntoventa-api/internal/domain"
	"github.com/jmcalvo/puntoventa-api/pkg/logger"
)

// statusFor mapea errores de dominio a códigos HTTP. Los errores de
// validación, referenciales, de stock y de estado son 400: el cliente
// envió una mutación que el dominio rechaza.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fiber.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrBranchNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrSaleNotFound):
		return fiber.StatusBadRequest, "INVALID_REFERENCE"
	case errors.Is(err, domain.ErrUserBranchMismatch):
		return fiber.StatusBadRequest, "USER_BRANCH_MISMATCH"
	case errors.Is(err, domain.ErrOrderDelivered),
		errors.Is(err, domain.ErrOrderCancelled),
		errors.Is(err, domain.ErrCancelDeliveredOrder),
		errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusBadRequest, "INVALID_STATE"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// respondError convierte un error de caso de uso en respuesta HTTP. Los
// errores de dominio exponen su mensaje; los internos se loguean y el
// cliente recibe un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "error interno"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
