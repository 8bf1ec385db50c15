package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// respondOK responde el sobre de éxito con los datos.
func respondOK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondErr responde el sobre de error con el código HTTP y de taxonomía indicados.
func respondErr(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: false,
		Message: message,
		Error:   code,
	})
}

// respondDomainErr mapea los errores de dominio a códigos HTTP y de taxonomía.
// Todo error no reconocido es INTERNAL (500).
func respondDomainErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return respondErr(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	case errors.Is(err, domain.ErrNotFound):
		return respondErr(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrInsufficientStock):
		return respondErr(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente")
	case errors.Is(err, domain.ErrConflict):
		return respondErr(c, fiber.StatusConflict, "CONFLICT", "conflicto con el estado actual")
	case errors.Is(err, domain.ErrDuplicate):
		return respondErr(c, fiber.StatusConflict, "DUPLICATE", "recurso duplicado")
	}
	return respondErr(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
}
