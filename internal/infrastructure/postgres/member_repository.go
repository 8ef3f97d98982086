package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

const memberColumns = `id, email, password_hash, first_name, last_name, role, status, created_at, updated_at`

// MemberRepo implementación de MemberRepository.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el adaptador.
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

// Create persiste un nuevo miembro.
func (r *MemberRepo) Create(ctx context.Context, m *entity.Member) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO members (`+memberColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Email, m.PasswordHash, m.FirstName, m.LastName, m.Role, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID (nil, nil si no existe).
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	return r.getOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
}

// FindByEmail obtiene un miembro por email sin distinguir mayúsculas (nil, nil si no existe).
func (r *MemberRepo) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	return r.getOne(ctx, `SELECT `+memberColumns+` FROM members WHERE lower(email) = lower($1)`, email)
}

func (r *MemberRepo) getOne(ctx context.Context, query string, arg string) (*entity.Member, error) {
	var m entity.Member
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&m.ID, &m.Email, &m.PasswordHash, &m.FirstName, &m.LastName, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}
