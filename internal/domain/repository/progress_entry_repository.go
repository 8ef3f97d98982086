package repository

import (
	"context"

	"github.com/clairefro/flc-wix/internal/domain/entity"
)

// ProgressEntryRepository puerto de la colección de formularios de progreso.
// Todas las lecturas son paginadas con limit/offset.
type ProgressEntryRepository interface {
	// ListByEmail ordena por fecha, categoría cruda y curso.
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.ProgressEntry, error)
	// ListAll ordena por email.
	ListAll(ctx context.Context, limit, offset int) ([]*entity.ProgressEntry, error)
	ListByCourse(ctx context.Context, course string, limit, offset int) ([]*entity.ProgressEntry, error)
	Create(ctx context.Context, e *entity.ProgressEntry) error
}
