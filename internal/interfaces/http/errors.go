package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
)

// statusFor es la tabla explícita error de dominio -> (status HTTP, código).
// Se consulta con errors.Is; no se inspeccionan strings ni campos dinámicos.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, "INVALID_ID"
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrSubcategoryNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// respondError traduce un error de dominio a la respuesta JSON uniforme.
// Los errores inesperados del almacén salen como 500 con el mensaje adjunto
// para diagnóstico; nada se silencia.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.Fail(err.Error(), code))
}
