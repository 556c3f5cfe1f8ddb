package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
)

// domainError traduce errores de dominio del motor de inventario a respuestas
// HTTP. Los errores no mapeados se loggean con detalle del lado del servidor y
// al cliente le llega un mensaje genérico.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewError("INVALID_QUANTITY", "cantidad inválida para el tipo de transacción"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewError("VALIDATION", "datos inválidos"))
	case errors.Is(err, domain.ErrWarehouseInactive):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewError("WAREHOUSE_INACTIVE", "la bodega está inactiva"))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("INSUFFICIENT_STOCK", "stock insuficiente"))
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("INVALID_TRANSITION", "transición de estado no permitida"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE", "el recurso ya existe"))
	case errors.Is(err, domain.ErrBusy):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.NewError("BUSY", "recurso ocupado, reintente"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("UNAUTHORIZED", "credenciales inválidas"))
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno en handler")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", "error interno"))
}
