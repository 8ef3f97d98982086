package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/interfaces/viewsession"
)

// LocalSession key de la sesión de directorio en c.Locals.
const LocalSession = "directory_session"

// sessionFinder es el contrato mínimo que necesita el middleware para resolver sesiones.
// Lo implementa *viewsession.Store.
type sessionFinder interface {
	Get(id string) (*viewsession.Session, error)
}

// RequireSession resuelve la sesión del parámetro :id y la deja en c.Locals.
//
// Comportamiento:
//   - 400 Bad Request → falta el id.
//   - 404 Not Found   → sesión inexistente o expirada.
func RequireSession(store sessionFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
		}
		s, err := store.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Code:    "SESSION_NOT_FOUND",
					Message: "sesión inexistente o expirada",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// GetSession devuelve la sesión resuelta por RequireSession.
func GetSession(c *fiber.Ctx) *viewsession.Session {
	s, _ := c.Locals(LocalSession).(*viewsession.Session)
	return s
}
