package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/domain/certification"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

// AdminUseCase utilidades de administración sobre formularios y contactos.
type AdminUseCase struct {
	entries  repository.ProgressEntryRepository
	contacts repository.ContactRepository
	pageSize int
	log      zerolog.Logger
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(entries repository.ProgressEntryRepository, contacts repository.ContactRepository, pageSize int, log zerolog.Logger) *AdminUseCase {
	if pageSize <= 0 {
		pageSize = DefaultFormsPageSize
	}
	return &AdminUseCase{entries: entries, contacts: contacts, pageSize: pageSize, log: log}
}

// EmailsMissingCourse emails de la colección de formularios sin envío para el curso.
// Ambas lecturas corren en paralelo.
func (uc *AdminUseCase) EmailsMissingCourse(ctx context.Context, course string) ([]string, error) {
	if course == "" {
		return nil, domain.ErrInvalidInput
	}
	var all, taken []*entity.ProgressEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = readAll(gctx, uc.pageSize, uc.entries.ListAll)
		return err
	})
	g.Go(func() error {
		var err error
		taken, err = readAll(gctx, uc.pageSize, func(ctx context.Context, limit, offset int) ([]*entity.ProgressEntry, error) {
			return uc.entries.ListByCourse(ctx, course, limit, offset)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.log.Error().Err(err).Str("course", course).Msg("error obteniendo emails")
		return nil, fmt.Errorf("emails missing course: %w", err)
	}
	return certification.EmailsMissingCourse(all, taken), nil
}

// ContactsChunk ventana de contactos del CRM. Un fallo se registra y devuelve una ventana vacía.
func (uc *AdminUseCase) ContactsChunk(ctx context.Context, page dto.PageRequest) *dto.ContactsChunkResponse {
	page.DefaultPage(uc.pageSize, 1000)
	list, total, err := uc.contacts.List(ctx, page.Limit, page.Offset)
	if err != nil {
		uc.log.Error().Err(err).Int("limit", page.Limit).Int("offset", page.Offset).Msg("error en ventana de contactos")
		return &dto.ContactsChunkResponse{Items: []dto.ContactDTO{}, Offset: page.Offset}
	}
	items := make([]dto.ContactDTO, 0, len(list))
	for _, c := range list {
		items = append(items, toContactDTO(c))
	}
	return &dto.ContactsChunkResponse{
		Items:      items,
		HasMore:    page.Offset+page.Limit < total,
		TotalCount: total,
		Offset:     page.Offset,
	}
}

func toContactDTO(c *entity.Contact) dto.ContactDTO {
	addrs := make([]string, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addrs = append(addrs, a.Joined())
	}
	return dto.ContactDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Addresses: addrs,
	}
}
