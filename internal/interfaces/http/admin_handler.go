package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/application/usecase"
	"github.com/clairefro/flc-wix/internal/domain"
)

// AdminHandler utilidades de administración (solo admin).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// MissingEmails godoc
// @Summary      Emails sin envío para un curso
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        course  path  string  true  "Curso"
// @Success      200     {array}   string
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/admin/courses/{course}/missing-emails [get]
func (h *AdminHandler) MissingEmails(c *fiber.Ctx) error {
	course, err := url.PathUnescape(c.Params("course"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "curso inválido"})
	}
	emails, err := h.uc.EmailsMissingCourse(c.UserContext(), course)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "curso requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch emails."})
	}
	return c.JSON(emails)
}

// Contacts godoc
// @Summary      Ventana de contactos del CRM
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ContactsChunkResponse
// @Router       /api/admin/contacts [get]
func (h *AdminHandler) Contacts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.ContactsChunk(c.UserContext(), page))
}
