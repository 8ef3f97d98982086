package repository

import (
	"context"

	"github.com/clairefro/flc-wix/internal/domain/entity"
)

// MemberRepository define el puerto de persistencia para Member.
type MemberRepository interface {
	Create(ctx context.Context, m *entity.Member) error
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	FindByEmail(ctx context.Context, email string) (*entity.Member, error)
}
