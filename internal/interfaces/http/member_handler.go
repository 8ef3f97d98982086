package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/application/usecase"
	"github.com/clairefro/flc-wix/internal/domain"
)

// MemberHandler datos del miembro autenticado.
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Address godoc
// @Summary      Dirección del miembro en base64
// @Description  Primera dirección del contacto unida con ", " y codificada en base64. Vacía si no tiene.
// @Tags         members
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AddressResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/members/me/address [get]
func (h *MemberHandler) Address(c *fiber.Ctx) error {
	out, err := h.uc.Address(c.UserContext(), GetMemberID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "member_id requerido"})
		case errors.Is(err, domain.ErrMemberNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto del miembro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DecodeBase64 godoc
// @Summary      Decodificar texto base64
// @Tags         utils
// @Accept       json
// @Produce      json
// @Param        body  body  dto.Base64Request  true  "Texto codificado"
// @Success      200   {object}  dto.Base64Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/base64/decode [post]
func DecodeBase64(c *fiber.Ctx) error {
	var in dto.Base64Request
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := usecase.DecodeBase64(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BASE64", Message: err.Error()})
	}
	return c.JSON(out)
}
