package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appdir "github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
)

// PractitionerHandler consulta pública del directorio de practicantes.
type PractitionerHandler struct {
	svc *appdir.Service
}

// NewPractitionerHandler construye el handler.
func NewPractitionerHandler(svc *appdir.Service) *PractitionerHandler {
	return &PractitionerHandler{svc: svc}
}

// List godoc
// @Summary      Ventana de practicantes
// @Tags         practitioners
// @Produce      json
// @Param        country  query  string  false  "País"
// @Param        region   query  []string  false  "Regiones (contiene alguna)"  collectionFormat(multi)
// @Param        name     query  string  false  "Subcadena del nombre"
// @Param        skip     query  int     false  "Registros a saltar"  default(0)
// @Param        limit    query  int     false  "Tamaño de la ventana"  default(40)
// @Success      200      {object}  dto.PractitionerPageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/practitioners [get]
func (h *PractitionerHandler) List(c *fiber.Ctx) error {
	var q dto.PractitionerQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if q.Limit == 0 {
		q.Limit = domaindir.DefaultPageSize
	}
	items, err := h.svc.FetchPage(c.UserContext(), appdir.PredicateFrom(q), q.Skip, q.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "skip debe ser >= 0 y limit > 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PractitionerPageResponse{Items: items, Skip: q.Skip, Limit: min(q.Limit, appdir.MaxPageLimit)})
}

// Count godoc
// @Summary      Total de practicantes que cumplen el filtro
// @Tags         practitioners
// @Produce      json
// @Param        country  query  string  false  "País"
// @Param        region   query  []string  false  "Regiones"  collectionFormat(multi)
// @Param        name     query  string  false  "Subcadena del nombre"
// @Success      200      {object}  dto.CountResponse
// @Router       /api/practitioners/count [get]
func (h *PractitionerHandler) Count(c *fiber.Ctx) error {
	var q dto.PractitionerQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	total, err := h.svc.Count(c.UserContext(), appdir.PredicateFrom(q))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CountResponse{Total: total})
}

// Regions godoc
// @Summary      Regiones de un país (únicas y ordenadas)
// @Tags         practitioners
// @Produce      json
// @Param        country  query  string  true  "País"
// @Success      200      {array}   string
// @Router       /api/practitioners/regions [get]
func (h *PractitionerHandler) Regions(c *fiber.Ctx) error {
	regions, err := h.svc.DistinctRegions(c.UserContext(), c.Query("country"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if regions == nil {
		regions = []string{}
	}
	return c.JSON(regions)
}

// Countries godoc
// @Summary      Países con practicantes (opciones del dropdown)
// @Tags         practitioners
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/practitioners/countries [get]
func (h *PractitionerHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.svc.Countries(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(countries)
}
