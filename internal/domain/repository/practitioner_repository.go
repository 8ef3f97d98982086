package repository

import (
	"context"

	"github.com/clairefro/flc-wix/internal/domain/directory"
	"github.com/clairefro/flc-wix/internal/domain/entity"
)

// PractitionerRepository puerto de lectura paginada del directorio de practicantes.
// FetchPage debe devolver un orden estable para el mismo predicado entre llamadas.
type PractitionerRepository interface {
	Count(ctx context.Context, p directory.Predicate) (int, error)
	FetchPage(ctx context.Context, p directory.Predicate, skip, limit int) ([]*entity.Practitioner, error)
	// RegionsByCountry devuelve los valores de región de los practicantes del país (pueden repetirse).
	RegionsByCountry(ctx context.Context, country string) ([]string, error)
	ListCountries(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, p *entity.Practitioner) error
}
