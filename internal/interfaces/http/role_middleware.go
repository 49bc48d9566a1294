package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
)

// RequireRole devuelve el gate de autorización por rol. Debe componerse DESPUÉS
// de AuthMiddleware, en ese orden, en cada ruta.
//
// Comportamiento:
//   - 401 MISSING_ROLE si no hay identidad o el token no trae rol.
//   - 403 FORBIDDEN (con requiredRoles) si el rol no está permitido.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Acceso no autorizado: usuario no autenticado", "MISSING_ROLE"))
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":       false,
			"message":       fmt.Sprintf("Acceso denegado: Rol %s no tiene permisos para esta acción", role),
			"error":         "FORBIDDEN",
			"requiredRoles": allowedRoles,
		})
	}
}
