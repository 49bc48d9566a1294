package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalEmail  = "email"
)

// Header alternativo que lleva el token crudo cuando no se usa Bearer.
const fallbackTokenHeader = "x-access-token"

// AuthMiddleware valida el token JWT y deja la identidad {id, role, email} en
// c.Locals. Prefiere `Authorization: Bearer <token>` y cae al header
// x-access-token con el token crudo. Distingue expiración de malformación.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Autenticación requerida", "MISSING_TOKEN"))
		}
		identity, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token expirado", "TOKEN_EXPIRED"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token malformado", "TOKEN_MALFORMED"))
		}
		c.Locals(LocalUserID, identity.UserID)
		c.Locals(LocalRole, identity.Role)
		c.Locals(LocalEmail, identity.Email)
		return c.Next()
	}
}

// extractToken saca el token del header Authorization (esquema Bearer) o, en su
// defecto, del header x-access-token.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Get(fallbackTokenHeader))
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
