package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

// MaxPageLimit tope de la ventana pedida por clientes HTTP.
const MaxPageLimit = 100

var _ QueryService = (*Service)(nil)

// Service caso de uso de consulta del directorio sobre el repositorio de practicantes.
// Implementa QueryService para los controladores que corren en el mismo proceso.
type Service struct {
	repo repository.PractitionerRepository
}

// NewService construye el caso de uso.
func NewService(repo repository.PractitionerRepository) *Service {
	return &Service{repo: repo}
}

// PredicateFrom normaliza los parámetros de consulta en un predicado.
func PredicateFrom(q dto.PractitionerQuery) domaindir.Predicate {
	p := domaindir.Predicate{
		Country: strings.TrimSpace(q.Country),
		Name:    strings.TrimSpace(q.Name),
	}
	for _, r := range q.Region {
		if r = strings.TrimSpace(r); r != "" {
			p.Regions = append(p.Regions, r)
		}
	}
	return p
}

// Count total de practicantes que cumplen el predicado.
func (s *Service) Count(ctx context.Context, p domaindir.Predicate) (int, error) {
	return s.repo.Count(ctx, p)
}

// FetchPage ventana [skip, skip+limit) de practicantes en orden estable.
func (s *Service) FetchPage(ctx context.Context, p domaindir.Predicate, skip, limit int) ([]dto.PractitionerDTO, error) {
	if skip < 0 || limit <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	list, err := s.repo.FetchPage(ctx, p, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PractitionerDTO, 0, len(list))
	for _, pr := range list {
		out = append(out, toPractitionerDTO(pr))
	}
	return out, nil
}

// Regions valores de región de los practicantes del país.
func (s *Service) Regions(ctx context.Context, country string) ([]string, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, nil
	}
	regions, err := s.repo.RegionsByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("regiones de %s: %w", country, err)
	}
	return regions, nil
}

// DistinctRegions regiones únicas y ordenadas del país (opciones del selector).
func (s *Service) DistinctRegions(ctx context.Context, country string) ([]string, error) {
	raw, err := s.Regions(ctx, country)
	if err != nil {
		return nil, err
	}
	return domaindir.DistinctRegions(raw), nil
}

// Countries opciones del dropdown de país.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	return s.repo.ListCountries(ctx)
}

func toPractitionerDTO(p *entity.Practitioner) dto.PractitionerDTO {
	region := p.Region
	if region == nil {
		region = []string{}
	}
	return dto.PractitionerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Country:   p.Country,
		Region:    region,
		City:      p.City,
		Email:     p.Email,
		Website:   p.Website,
		Phone:     p.Phone,
		PhotoURL:  p.PhotoURL,
		CreatedAt: p.CreatedAt,
	}
}
