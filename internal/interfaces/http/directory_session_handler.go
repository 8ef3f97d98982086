package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/interfaces/viewsession"
)

// DirectorySessionHandler páginas del directorio controladas desde el servidor.
type DirectorySessionHandler struct {
	store *viewsession.Store
}

// NewDirectorySessionHandler construye el handler.
func NewDirectorySessionHandler(store *viewsession.Store) *DirectorySessionHandler {
	return &DirectorySessionHandler{store: store}
}

// Create godoc
// @Summary      Abrir página del directorio
// @Description  Crea una sesión con su controlador y devuelve la vista inicial (primera página sin filtros).
// @Tags         directory
// @Produce      json
// @Success      201  {object}  dto.DirectorySessionResponse
// @Router       /api/directory/sessions [post]
func (h *DirectorySessionHandler) Create(c *fiber.Ctx) error {
	s, err := h.store.Create(c.UserContext())
	// Un fallo de carga inicial ya queda en el indicador de estado de la vista.
	if err != nil && !errors.Is(err, domain.ErrLoadFailed) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DirectorySessionResponse{ID: s.ID, View: s.Page().View()})
}

// Get godoc
// @Summary      Vista actual de la página
// @Tags         directory
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.DirectorySessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/directory/sessions/{id} [get]
func (h *DirectorySessionHandler) Get(c *fiber.Ctx) error {
	s := GetSession(c)
	return c.JSON(dto.DirectorySessionResponse{ID: s.ID, View: s.Page().View()})
}

// Event godoc
// @Summary      Enviar evento de UI
// @Description  type: country | region | search | page. Devuelve la vista después de aplicar el evento.
// @Tags         directory
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la sesión"
// @Param        body  body  dto.DirectoryEventRequest  true  "Evento"
// @Success      200   {object}  dto.DirectorySessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/directory/sessions/{id}/events [post]
func (h *DirectorySessionHandler) Event(c *fiber.Ctx) error {
	s := GetSession(c)
	var in dto.DirectoryEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := s.Dispatch(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DirectorySessionResponse{ID: s.ID, View: view})
}

// Delete godoc
// @Summary      Cerrar página del directorio
// @Tags         directory
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Router       /api/directory/sessions/{id} [delete]
func (h *DirectorySessionHandler) Delete(c *fiber.Ctx) error {
	h.store.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
