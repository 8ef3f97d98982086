package viewsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
)

// Session vista de página con su controlador. Los eventos de una sesión se procesan de a uno,
// como en el bucle de eventos del navegador.
type Session struct {
	ID         string
	page       *Page
	controller *directory.Controller

	eventsMu sync.Mutex
	lastSeen time.Time
}

// Page widgets de la sesión.
func (s *Session) Page() *Page { return s.page }

// Controller controlador de la sesión.
func (s *Session) Controller() *directory.Controller { return s.controller }

// Dispatch aplica un evento de UI y devuelve la vista resultante. Las consultas del evento
// usan ctx. Un fallo de carga no invalida la vista: el indicador ya muestra el mensaje de reintento.
func (s *Session) Dispatch(ctx context.Context, in dto.DirectoryEventRequest) (dto.DirectoryView, error) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	switch in.Type {
	case dto.EventCountry:
		s.page.SelectCountry(ctx, in.Value)
	case dto.EventRegion:
		s.page.ClickTags(ctx, in.Values)
	case dto.EventSearch:
		s.page.Type(ctx, in.Value)
	case dto.EventPage:
		source := in.Source
		if source == "" {
			source = directory.PaginationTop
		}
		if source != directory.PaginationTop && source != directory.PaginationBottom {
			return dto.DirectoryView{}, fmt.Errorf("%w: barra de paginación %q", domain.ErrInvalidInput, source)
		}
		s.page.ClickPage(ctx, source, in.Page)
	default:
		return dto.DirectoryView{}, fmt.Errorf("%w: tipo de evento %q", domain.ErrInvalidInput, in.Type)
	}
	return s.page.View(), nil
}

// StoreConfig parámetros del almacén de sesiones.
type StoreConfig struct {
	TTL            time.Duration
	PageSize       int
	RequestTimeout time.Duration
}

// Store sesiones activas en memoria con expiración por inactividad.
type Store struct {
	query directory.QueryService
	cfg   StoreConfig
	log   zerolog.Logger
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore construye el almacén. Las sesiones usan query como servicio de consulta.
func NewStore(query directory.QueryService, cfg StoreConfig, log zerolog.Logger) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	return &Store{
		query:    query,
		cfg:      cfg,
		log:      log.With().Str("component", "directory_sessions").Logger(),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create abre una vista nueva: construye el controlador, registra los eventos y carga la página 1.
// La sesión se guarda aunque la carga inicial falle; el usuario puede reintentar.
func (s *Store) Create(ctx context.Context) (*Session, error) {
	page := NewPage()
	deps := page.Deps()
	deps.Query = s.query
	deps.Logger = s.log

	ctrl := directory.NewController(deps, directory.Options{
		PageSize:       s.cfg.PageSize,
		RequestTimeout: s.cfg.RequestTimeout,
	})
	ctrl.Bind(page)

	sess := &Session{ID: uuid.NewString(), page: page, controller: ctrl, lastSeen: s.now()}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	err := ctrl.Init(ctx)
	s.log.Debug().Str("session_id", sess.ID).Msg("sesión de directorio creada")
	return sess, err
}

// Get devuelve la sesión y renueva su expiración.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	now := s.now()
	if now.Sub(sess.lastSeen) > s.cfg.TTL {
		delete(s.sessions, id)
		return nil, domain.ErrSessionExpired
	}
	sess.lastSeen = now
	return sess, nil
}

// Delete cierra la sesión.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len cantidad de sesiones en memoria.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep elimina las sesiones inactivas y devuelve cuántas borró.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.cfg.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper barre sesiones vencidas cada interval hasta que ctx se cancele.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info().Int("removed", n).Msg("sesiones de directorio expiradas")
			}
		}
	}
}
