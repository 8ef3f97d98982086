package postgres

import (
	"context"
	"fmt"

	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

var _ repository.PractitionerRepository = (*PractitionerRepo)(nil)

const practitionerColumns = `id, name, country, region, city, email, website, phone, photo_url, created_at`

// PractitionerRepo implementación de PractitionerRepository sobre PostgreSQL (usable con pool o tx).
type PractitionerRepo struct {
	q Querier
}

// NewPractitionerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPractitionerRepository(q Querier) *PractitionerRepo {
	return &PractitionerRepo{q: q}
}

// Count total de practicantes que cumplen el predicado.
func (r *PractitionerRepo) Count(ctx context.Context, p domaindir.Predicate) (int, error) {
	where, args := predicateWhere(p)
	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM practitioners "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count practitioners: %w", err)
	}
	return total, nil
}

// FetchPage ventana de practicantes. El orden (name, id) es estable entre llamadas.
func (r *PractitionerRepo) FetchPage(ctx context.Context, p domaindir.Predicate, skip, limit int) ([]*entity.Practitioner, error) {
	where, args := predicateWhere(p)
	query := fmt.Sprintf(`
		SELECT %s
		FROM practitioners
		%s
		ORDER BY name ASC, id ASC
		LIMIT $%d OFFSET $%d`, practitionerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, skip)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list practitioners: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Practitioner, 0, limit)
	for rows.Next() {
		var pr entity.Practitioner
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Country, &pr.Region, &pr.City, &pr.Email,
			&pr.Website, &pr.Phone, &pr.PhotoURL, &pr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan practitioner: %w", err)
		}
		list = append(list, &pr)
	}
	return list, rows.Err()
}

// RegionsByCountry regiones (sin deduplicar) de los practicantes del país.
func (r *PractitionerRepo) RegionsByCountry(ctx context.Context, country string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT unnest(region) FROM practitioners WHERE country = $1`, country)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var regions []string
	for rows.Next() {
		var region string
		if err := rows.Scan(&region); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

// ListCountries países con al menos un practicante, en orden alfabético.
func (r *PractitionerRepo) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT country FROM practitioners WHERE country <> '' ORDER BY country`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	countries := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// Upsert inserta o actualiza un practicante por ID.
func (r *PractitionerRepo) Upsert(ctx context.Context, p *entity.Practitioner) error {
	region := p.Region
	if region == nil {
		region = []string{}
	}
	query := `
		INSERT INTO practitioners (` + practitionerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, country = EXCLUDED.country, region = EXCLUDED.region,
			city = EXCLUDED.city, email = EXCLUDED.email, website = EXCLUDED.website,
			phone = EXCLUDED.phone, photo_url = EXCLUDED.photo_url`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Country, region, p.City, p.Email, p.Website, p.Phone, p.PhotoURL, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert practitioner: %w", err)
	}
	return nil
}
