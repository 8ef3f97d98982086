package postgres

import (
	"context"
	"fmt"

	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

var _ repository.ProgressEntryRepository = (*ProgressEntryRepo)(nil)

const progressColumns = `id, email, first_name, last_name, date_completed, hours, school, instructor,
	course_name, course, category, link, note, created_at`

// ProgressEntryRepo colección de envíos del formulario de progreso (tabla progress_entries).
type ProgressEntryRepo struct {
	q Querier
}

// NewProgressEntryRepository construye el adaptador.
func NewProgressEntryRepository(q Querier) *ProgressEntryRepo {
	return &ProgressEntryRepo{q: q}
}

// ListByEmail envíos del estudiante ordenados por fecha, categoría cruda y curso.
func (r *ProgressEntryRepo) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.list(ctx, `
		SELECT `+progressColumns+` FROM progress_entries
		WHERE lower(email) = lower($1)
		ORDER BY date_completed, category, course, id
		LIMIT $2 OFFSET $3`, email, limit, offset)
}

// ListAll todos los envíos ordenados por email.
func (r *ProgressEntryRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.list(ctx, `
		SELECT `+progressColumns+` FROM progress_entries
		ORDER BY email, created_at, id
		LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByCourse envíos de un curso.
func (r *ProgressEntryRepo) ListByCourse(ctx context.Context, course string, limit, offset int) ([]*entity.ProgressEntry, error) {
	return r.list(ctx, `
		SELECT `+progressColumns+` FROM progress_entries
		WHERE course = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, course, limit, offset)
}

// Create persiste un envío del formulario.
func (r *ProgressEntryRepo) Create(ctx context.Context, e *entity.ProgressEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO progress_entries (`+progressColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, e.Email, e.FirstName, e.LastName, e.DateCompleted, e.Hours, e.School, e.Instructor,
		e.CourseName, e.Course, e.Category, e.Link, e.Note, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert progress entry: %w", err)
	}
	return nil
}

func (r *ProgressEntryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProgressEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list progress entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProgressEntry
	for rows.Next() {
		var e entity.ProgressEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.FirstName, &e.LastName, &e.DateCompleted, &e.Hours,
			&e.School, &e.Instructor, &e.CourseName, &e.Course, &e.Category, &e.Link, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
