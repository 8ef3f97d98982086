package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/application/usecase"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/domain/certification"
)

// CertificationHandler reportes de horas de formación.
type CertificationHandler struct {
	uc *usecase.CertificationUseCase
}

// NewCertificationHandler construye el handler.
func NewCertificationHandler(uc *usecase.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

// Me godoc
// @Summary      Registros del miembro autenticado
// @Tags         certification
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StudentRecordsResponse
// @Router       /api/certification/me [get]
func (h *CertificationHandler) Me(c *fiber.Ctx) error {
	return h.records(c, GetEmail(c))
}

// Student godoc
// @Summary      Registros de un estudiante (admin)
// @Tags         certification
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del estudiante"
// @Success      200    {object}  dto.StudentRecordsResponse
// @Router       /api/certification/students/{email} [get]
func (h *CertificationHandler) Student(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email inválido"})
	}
	return h.records(c, email)
}

func (h *CertificationHandler) records(c *fiber.Ctx, email string) error {
	out, err := h.uc.Records(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Students godoc
// @Summary      Estudiantes únicos (admin)
// @Tags         certification
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  certification.Student
// @Router       /api/certification/students [get]
func (h *CertificationHandler) Students(c *fiber.Ctx) error {
	out, err := h.uc.Students(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de progreso a partir de registros
// @Tags         certification
// @Accept       json
// @Produce      json
// @Param        body  body  []certification.Record  true  "Registros"
// @Success      200   {object}  dto.SummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/certification/summary [post]
func (h *CertificationHandler) Summary(c *fiber.Ctx) error {
	var records []certification.Record
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Summary(records))
}

// ReportPDF godoc
// @Summary      Reporte de progreso en PDF
// @Tags         certification
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/certification/me/report.pdf [get]
func (h *CertificationHandler) ReportPDF(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email requerido"})
	}
	out, err := h.uc.ReportPDF(c.UserContext(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="certification-progress.pdf"`)
	return c.Send(out)
}
