package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
)

// Identificadores de las dos barras de paginación. La inferior hace scroll a los resultados.
const (
	PaginationTop    = "pagination1"
	PaginationBottom = "pagination2"
)

const defaultRequestTimeout = 10 * time.Second

// Deps colaboradores del controlador, resueltos una sola vez al construirlo.
type Deps struct {
	Query           QueryService
	Results         ResultList
	Top             PaginationBar
	Bottom          PaginationBar
	Status          StatusIndicator
	Tags            TagSelector
	SearchInput     ValueControl
	CountryDropdown ValueControl
	Scroller        Scroller
	Logger          zerolog.Logger
}

// Options parámetros del controlador.
type Options struct {
	PageSize       int
	RequestTimeout time.Duration
}

// State copia del estado de filtro y paginación.
type State struct {
	Filter         domaindir.Predicate
	SelectedRegion string
	CurrentPage    int
	PageSize       int
	Total          int
	TotalPages     int
	RegionOptions  []string
}

// Controller coordina filtros, selección de región y paginación del directorio contra el servicio
// de consulta. Cada LoadPage toma un número de secuencia; solo la respuesta de la última
// petición emitida se publica (gana la última).
type Controller struct {
	deps    Deps
	opts    Options
	log     zerolog.Logger
	loadsMu sync.Mutex // serializa la publicación; el estado vive en mu

	mu             sync.Mutex
	filter         domaindir.Predicate
	selectedRegion string
	currentPage    int
	total          int
	regionOptions  []string
	seq            uint64
	gen            uint64 // generación del filtro; sube en cada cambio
	totalGen       uint64 // generación a la que pertenece total
}

// NewController construye el controlador para una vista de página.
func NewController(deps Deps, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = domaindir.DefaultPageSize
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	return &Controller{
		deps:        deps,
		opts:        opts,
		log:         deps.Logger.With().Str("component", "directory_controller").Logger(),
		currentPage: 1,
		gen:         1, // sin total cacheado todavía
	}
}

// Init carga la primera página sin filtros y oculta el selector de regiones.
func (c *Controller) Init(ctx context.Context) error {
	err := c.LoadPage(ctx, 1)
	c.hideTags()
	return err
}

// Bind registra los handlers del controlador en el origen de eventos.
// Los errores de carga ya quedan reflejados en el indicador; aquí solo se registran.
func (c *Controller) Bind(events EventSource) {
	events.OnCountryChange(func(ctx context.Context, country string) {
		c.logEventErr("country", c.SetCountry(ctx, country))
	})
	events.OnRegionTagsChange(func(ctx context.Context, values []string) {
		c.logEventErr("region", c.ToggleRegionTag(ctx, values))
	})
	events.OnSearchInput(func(ctx context.Context, text string) {
		c.logEventErr("search", c.SetNameSearch(ctx, text))
	})
	events.OnPageChange(func(ctx context.Context, source string, page int) {
		c.logEventErr("page", c.GoToPage(ctx, source, page))
	})
}

func (c *Controller) logEventErr(event string, err error) {
	if err != nil {
		c.log.Warn().Err(err).Str("event", event).Msg("evento de UI con error")
	}
}

// SetCountry aplica el filtro de país (ResetAll o "" lo quitan), limpia región y búsqueda,
// recarga la página 1 y recalcula las regiones disponibles.
func (c *Controller) SetCountry(ctx context.Context, country string) error {
	country = strings.TrimSpace(country)
	if country == domaindir.ResetAll {
		country = ""
	}

	c.mu.Lock()
	c.filter = domaindir.Predicate{Country: country}
	c.selectedRegion = ""
	c.currentPage = 1
	c.gen++
	c.mu.Unlock()

	if country == "" {
		c.setControl(c.deps.CountryDropdown, domaindir.ResetAll)
	} else {
		c.setControl(c.deps.CountryDropdown, country)
	}
	c.setControl(c.deps.SearchInput, "")
	c.hideTags()

	err := c.LoadPage(ctx, 1)
	c.updateRegions(ctx, country)
	return err
}

// ToggleRegionTag recibe el valor actual del selector de tags y lo reduce a una sola región.
func (c *Controller) ToggleRegionTag(ctx context.Context, selection []string) error {
	c.mu.Lock()
	c.selectedRegion = domaindir.ReduceTagSelection(c.selectedRegion, selection)
	if c.selectedRegion != "" {
		c.filter.Regions = []string{c.selectedRegion}
	} else {
		c.filter.Regions = nil
	}
	value := append([]string(nil), c.filter.Regions...)
	c.currentPage = 1
	c.gen++
	c.mu.Unlock()

	if c.deps.Tags != nil {
		c.deps.Tags.SetValue(value)
	}
	return c.LoadPage(ctx, 1)
}

// SetNameSearch filtra por nombre; excluye país y región.
func (c *Controller) SetNameSearch(ctx context.Context, text string) error {
	c.mu.Lock()
	c.filter = domaindir.Predicate{Name: strings.TrimSpace(text)}
	c.selectedRegion = ""
	c.currentPage = 1
	c.gen++
	c.mu.Unlock()

	if c.deps.SearchInput != nil && c.deps.SearchInput.Value() != text {
		c.deps.SearchInput.SetValue(text)
	}
	c.setControl(c.deps.CountryDropdown, domaindir.ResetAll)
	c.hideTags()

	return c.LoadPage(ctx, 1)
}

// GoToPage atiende el clic en cualquiera de las dos barras de paginación.
func (c *Controller) GoToPage(ctx context.Context, source string, page int) error {
	if page == 0 {
		page = 1
	}
	err := c.LoadPage(ctx, page)

	c.mu.Lock()
	current := c.currentPage
	c.mu.Unlock()
	for _, bar := range c.bars() {
		bar.SetCurrentPage(current)
	}

	if source == PaginationBottom && c.deps.Scroller != nil {
		c.deps.Scroller.ScrollToResults()
	}
	return err
}

// LoadPage consulta el total (en la página 1, es decir, tras un cambio de filtro, o cuando el total
// cacheado pertenece a un filtro anterior), acota la página pedida al rango válido, trae la ventana
// y actualiza lista, paginación e indicador.
func (c *Controller) LoadPage(ctx context.Context, page int) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	gen := c.gen
	pred := c.filter.Clone()
	total := c.total
	fresh := c.totalGen == gen
	c.mu.Unlock()

	if page == 1 || !fresh {
		n, err := c.count(ctx, pred)
		if err != nil {
			return c.fail(seq, page, err)
		}
		total = n
	}

	totalPages := domaindir.TotalPages(total, c.opts.PageSize)
	page = domaindir.ClampPage(page, totalPages)

	items, err := c.fetch(ctx, pred, domaindir.Skip(page, c.opts.PageSize))
	if err != nil {
		return c.fail(seq, page, err)
	}

	c.loadsMu.Lock()
	defer c.loadsMu.Unlock()

	c.mu.Lock()
	if seq != c.seq || gen != c.gen {
		c.mu.Unlock()
		c.log.Debug().Uint64("seq", seq).Int("page", page).Msg("respuesta obsoleta descartada")
		return nil
	}
	c.total = total
	c.totalGen = gen
	c.currentPage = page
	c.mu.Unlock()

	if c.deps.Results != nil {
		c.deps.Results.SetItems(items)
	}
	c.updatePagination(page, totalPages)
	c.setStatus(domaindir.StatusText(pred, total, page, c.opts.PageSize, len(items)))

	c.log.Debug().
		Int("page", page).
		Int("total_pages", totalPages).
		Int("total", total).
		Int("visible", len(items)).
		Msg("página del directorio cargada")
	return nil
}

func (c *Controller) count(ctx context.Context, pred domaindir.Predicate) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()
	n, err := c.deps.Query.Count(ctx, pred)
	if err != nil {
		return 0, fmt.Errorf("contar practicantes: %w", err)
	}
	return n, nil
}

func (c *Controller) fetch(ctx context.Context, pred domaindir.Predicate, skip int) ([]dto.PractitionerDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()
	items, err := c.deps.Query.FetchPage(ctx, pred, skip, c.opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("traer página de practicantes: %w", err)
	}
	return items, nil
}

// fail deja el controlador interactivo: estado intacto e indicador con mensaje de reintento.
// Un fallo de una petición ya superada no toca la vista.
func (c *Controller) fail(seq uint64, page int, err error) error {
	c.loadsMu.Lock()
	defer c.loadsMu.Unlock()

	c.mu.Lock()
	latest := seq == c.seq
	c.mu.Unlock()

	wrapped := fmt.Errorf("cargar página %d: %w", page, errors.Join(domain.ErrLoadFailed, err))
	if !latest {
		c.log.Debug().Err(err).Uint64("seq", seq).Msg("fallo de petición obsoleta ignorado")
		return wrapped
	}
	c.log.Error().Err(err).Int("page", page).Msg("no se pudo cargar el directorio")
	c.setStatus(domaindir.LoadErrorText)
	return wrapped
}

func (c *Controller) updatePagination(page, totalPages int) {
	for _, bar := range c.bars() {
		if totalPages <= 1 {
			bar.SetVisible(false)
			continue
		}
		bar.SetVisible(true)
		bar.SetTotalPages(totalPages)
		bar.SetCurrentPage(page)
	}
}

// updateRegions recalcula las opciones de región del país. Un fallo de la consulta
// equivale a "sin regiones". Si el país cambió mientras tanto, el resultado se descarta.
func (c *Controller) updateRegions(ctx context.Context, country string) {
	if country == "" {
		c.hideTags()
		return
	}

	lookupCtx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	raw, err := c.deps.Query.Regions(lookupCtx, country)
	cancel()

	c.mu.Lock()
	stale := c.filter.Country != country
	c.mu.Unlock()
	if stale {
		return
	}
	if err != nil {
		c.log.Warn().Err(err).Str("country", country).Msg("consulta de regiones fallida, se ocultan los tags")
		c.hideTags()
		return
	}

	regions := domaindir.DistinctRegions(raw)
	if len(regions) == 0 {
		c.hideTags()
		return
	}
	c.showTags(regions)
}

func (c *Controller) showTags(regions []string) {
	c.mu.Lock()
	c.regionOptions = regions
	c.mu.Unlock()

	if c.deps.Tags == nil {
		return
	}
	options := make([]dto.TagOption, 0, len(regions))
	for _, r := range regions {
		options = append(options, dto.TagOption{Label: r, Value: r})
	}
	c.deps.Tags.SetOptions(options)
	c.deps.Tags.SetValue(nil)
	c.deps.Tags.SetVisible(true)
}

func (c *Controller) hideTags() {
	c.mu.Lock()
	c.regionOptions = nil
	c.mu.Unlock()

	if c.deps.Tags == nil {
		return
	}
	c.deps.Tags.SetValue(nil)
	c.deps.Tags.SetOptions(nil)
	c.deps.Tags.SetVisible(false)
}

func (c *Controller) setStatus(text string) {
	if c.deps.Status != nil {
		c.deps.Status.SetText(text)
	}
}

func (c *Controller) setControl(ctrl ValueControl, v string) {
	if ctrl != nil {
		ctrl.SetValue(v)
	}
}

func (c *Controller) bars() []PaginationBar {
	out := make([]PaginationBar, 0, 2)
	for _, b := range []PaginationBar{c.deps.Top, c.deps.Bottom} {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// State devuelve una copia del estado actual.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Filter:         c.filter.Clone(),
		SelectedRegion: c.selectedRegion,
		CurrentPage:    c.currentPage,
		PageSize:       c.opts.PageSize,
		Total:          c.total,
		TotalPages:     domaindir.TotalPages(c.total, c.opts.PageSize),
		RegionOptions:  append([]string(nil), c.regionOptions...),
	}
}
