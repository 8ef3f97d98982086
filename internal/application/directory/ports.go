package directory

import (
	"context"

	"github.com/clairefro/flc-wix/internal/application/dto"
	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
)

// QueryService servicio de consulta paginada sobre el directorio (local o remoto).
type QueryService interface {
	Count(ctx context.Context, p domaindir.Predicate) (int, error)
	FetchPage(ctx context.Context, p domaindir.Predicate, skip, limit int) ([]dto.PractitionerDTO, error)
	// Regions devuelve los valores de región de los registros del país; el controlador los deduplica y ordena.
	Regions(ctx context.Context, country string) ([]string, error)
}

// ResultList lista de tarjetas de resultados.
type ResultList interface {
	SetItems(items []dto.PractitionerDTO)
}

// PaginationBar control de paginación. La página tiene dos, sincronizados por el controlador.
type PaginationBar interface {
	ID() string
	SetVisible(visible bool)
	SetTotalPages(n int)
	SetCurrentPage(n int)
}

// StatusIndicator texto "N practitioners found ...".
type StatusIndicator interface {
	SetText(text string)
}

// TagSelector selector de regiones: multi-selección nativa restringida a un elemento.
type TagSelector interface {
	SetOptions(options []dto.TagOption)
	SetValue(values []string)
	SetVisible(visible bool)
}

// ValueControl input de texto o dropdown.
type ValueControl interface {
	Value() string
	SetValue(v string)
}

// Scroller lleva la vista a la lista de resultados.
type Scroller interface {
	ScrollToResults()
}

// EventSource origen de eventos de UI. Bind registra un handler por tipo de evento; cada evento
// llega con el contexto de quien lo dispara.
type EventSource interface {
	OnCountryChange(fn func(ctx context.Context, country string))
	OnRegionTagsChange(fn func(ctx context.Context, values []string))
	OnSearchInput(fn func(ctx context.Context, text string))
	OnPageChange(fn func(ctx context.Context, source string, page int))
}
