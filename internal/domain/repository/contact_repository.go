package repository

import (
	"context"

	"github.com/clairefro/flc-wix/internal/domain/entity"
)

// ContactRepository puerto del CRM de contactos.
type ContactRepository interface {
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	// List devuelve una ventana de contactos y el total de la colección.
	List(ctx context.Context, limit, offset int) ([]*entity.Contact, int, error)
}
