// Package viewsession aloja controladores del directorio en el servidor: cada sesión es una
// vista de página con widgets en memoria cuyo estado se devuelve como JSON.
package viewsession

import (
	"context"
	"sync"

	"github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/dto"
)

// Page widgets en memoria de una vista del directorio. Un único mutex protege todo el estado
// de la vista, de modo que View devuelve siempre una instantánea coherente.
type Page struct {
	mu sync.Mutex

	items    []dto.PractitionerDTO
	status   string
	bars     [2]barState
	tags     dto.TagsView
	search   string
	country  string
	scrolls  int
	handlers handlers
}

type barState struct {
	id      string
	visible bool
	current int
	total   int
}

type handlers struct {
	country func(context.Context, string)
	region  func(context.Context, []string)
	search  func(context.Context, string)
	page    func(context.Context, string, int)
}

// NewPage construye una vista vacía con el dropdown de país en "todos".
func NewPage() *Page {
	p := &Page{country: "RESET_ALL"}
	p.bars[0] = barState{id: directory.PaginationTop, current: 1, total: 1}
	p.bars[1] = barState{id: directory.PaginationBottom, current: 1, total: 1}
	return p
}

// Deps devuelve los widgets de la página como colaboradores del controlador.
func (p *Page) Deps() directory.Deps {
	return directory.Deps{
		Results:         resultList{p},
		Top:             paginationBar{p, 0},
		Bottom:          paginationBar{p, 1},
		Status:          statusText{p},
		Tags:            tagSelector{p},
		SearchInput:     searchInput{p},
		CountryDropdown: countryDropdown{p},
		Scroller:        scroller{p},
	}
}

// View instantánea del estado visible.
func (p *Page) View() dto.DirectoryView {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := dto.DirectoryView{
		Items:       append([]dto.PractitionerDTO{}, p.items...),
		Status:      p.status,
		SearchInput: p.search,
		Country:     p.country,
		Scrolls:     p.scrolls,
		Tags: dto.TagsView{
			Visible: p.tags.Visible,
			Options: append([]dto.TagOption{}, p.tags.Options...),
			Value:   append([]string{}, p.tags.Value...),
		},
	}
	for _, b := range p.bars {
		v.Pagination = append(v.Pagination, dto.PaginationView{
			ID: b.id, Visible: b.visible, CurrentPage: b.current, TotalPages: b.total,
		})
	}
	return v
}

// ── Eventos ───────────────────────────────────────────────────────────────────

// OnCountryChange implementa directory.EventSource.
func (p *Page) OnCountryChange(fn func(context.Context, string)) {
	p.mu.Lock()
	p.handlers.country = fn
	p.mu.Unlock()
}

// OnRegionTagsChange implementa directory.EventSource.
func (p *Page) OnRegionTagsChange(fn func(context.Context, []string)) {
	p.mu.Lock()
	p.handlers.region = fn
	p.mu.Unlock()
}

// OnSearchInput implementa directory.EventSource.
func (p *Page) OnSearchInput(fn func(context.Context, string)) {
	p.mu.Lock()
	p.handlers.search = fn
	p.mu.Unlock()
}

// OnPageChange implementa directory.EventSource.
func (p *Page) OnPageChange(fn func(context.Context, string, int)) {
	p.mu.Lock()
	p.handlers.page = fn
	p.mu.Unlock()
}

// SelectCountry simula el cambio del dropdown: fija el valor y dispara el evento.
func (p *Page) SelectCountry(ctx context.Context, country string) {
	p.mu.Lock()
	p.country = country
	fn := p.handlers.country
	p.mu.Unlock()
	if fn != nil {
		fn(ctx, country)
	}
}

// ClickTags simula un cambio del selector de tags con el valor resultante del widget.
func (p *Page) ClickTags(ctx context.Context, values []string) {
	p.mu.Lock()
	p.tags.Value = append([]string{}, values...)
	fn := p.handlers.region
	p.mu.Unlock()
	if fn != nil {
		fn(ctx, values)
	}
}

// Type simula la escritura en el buscador.
func (p *Page) Type(ctx context.Context, text string) {
	p.mu.Lock()
	p.search = text
	fn := p.handlers.search
	p.mu.Unlock()
	if fn != nil {
		fn(ctx, text)
	}
}

// ClickPage simula el clic en una barra de paginación.
func (p *Page) ClickPage(ctx context.Context, source string, page int) {
	p.mu.Lock()
	for i := range p.bars {
		if p.bars[i].id == source {
			p.bars[i].current = page
		}
	}
	fn := p.handlers.page
	p.mu.Unlock()
	if fn != nil {
		fn(ctx, source, page)
	}
}

// ── Widgets ───────────────────────────────────────────────────────────────────

type resultList struct{ p *Page }

func (w resultList) SetItems(items []dto.PractitionerDTO) {
	w.p.mu.Lock()
	w.p.items = append([]dto.PractitionerDTO{}, items...)
	w.p.mu.Unlock()
}

type paginationBar struct {
	p   *Page
	idx int
}

func (w paginationBar) ID() string {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	return w.p.bars[w.idx].id
}

func (w paginationBar) SetVisible(v bool) {
	w.p.mu.Lock()
	w.p.bars[w.idx].visible = v
	w.p.mu.Unlock()
}

func (w paginationBar) SetTotalPages(n int) {
	w.p.mu.Lock()
	w.p.bars[w.idx].total = n
	w.p.mu.Unlock()
}

func (w paginationBar) SetCurrentPage(n int) {
	w.p.mu.Lock()
	w.p.bars[w.idx].current = n
	w.p.mu.Unlock()
}

type statusText struct{ p *Page }

func (w statusText) SetText(text string) {
	w.p.mu.Lock()
	w.p.status = text
	w.p.mu.Unlock()
}

type tagSelector struct{ p *Page }

func (w tagSelector) SetOptions(options []dto.TagOption) {
	w.p.mu.Lock()
	w.p.tags.Options = append([]dto.TagOption{}, options...)
	w.p.mu.Unlock()
}

func (w tagSelector) SetValue(values []string) {
	w.p.mu.Lock()
	w.p.tags.Value = append([]string{}, values...)
	w.p.mu.Unlock()
}

func (w tagSelector) SetVisible(v bool) {
	w.p.mu.Lock()
	w.p.tags.Visible = v
	w.p.mu.Unlock()
}

type searchInput struct{ p *Page }

func (w searchInput) Value() string {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	return w.p.search
}

func (w searchInput) SetValue(v string) {
	w.p.mu.Lock()
	w.p.search = v
	w.p.mu.Unlock()
}

type countryDropdown struct{ p *Page }

func (w countryDropdown) Value() string {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	return w.p.country
}

func (w countryDropdown) SetValue(v string) {
	w.p.mu.Lock()
	w.p.country = v
	w.p.mu.Unlock()
}

type scroller struct{ p *Page }

func (w scroller) ScrollToResults() {
	w.p.mu.Lock()
	w.p.scrolls++
	w.p.mu.Unlock()
}
