package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// addressRow forma de cada dirección dentro de la columna JSONB contacts.addresses.
type addressRow struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	Subdivision string `json:"subdivision"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

// ContactRepo implementación de ContactRepository.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// GetByID obtiene un contacto por ID (nil, nil si no existe).
func (r *ContactRepo) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, addresses, created_at
		FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// List ventana de contactos ordenados por fecha de alta y total de la tabla.
func (r *ContactRepo) List(ctx context.Context, limit, offset int) ([]*entity.Contact, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, first_name, last_name, email, phone, addresses, created_at
		FROM contacts ORDER BY created_at, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	var raw []byte
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &raw, &c.CreatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		var addrs []addressRow
		if err := json.Unmarshal(raw, &addrs); err != nil {
			return nil, fmt.Errorf("decode addresses: %w", err)
		}
		for _, a := range addrs {
			c.Addresses = append(c.Addresses, entity.Address{
				Street: a.Street, City: a.City, Subdivision: a.Subdivision,
				PostalCode: a.PostalCode, Country: a.Country,
			})
		}
	}
	return &c, nil
}
