package dto

import "time"

// PractitionerDTO tarjeta del directorio.
type PractitionerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Region    []string  `json:"region"`
	City      string    `json:"city,omitempty"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PractitionerQuery parámetros de GET /api/practitioners y /count.
// Region admite varios valores (?region=a&region=b) con semántica "contiene alguna".
type PractitionerQuery struct {
	Country string   `query:"country"`
	Region  []string `query:"region"`
	Name    string   `query:"name"`
	Skip    int      `query:"skip"`
	Limit   int      `query:"limit"`
}

// PractitionerPageResponse ventana de resultados.
type PractitionerPageResponse struct {
	Items []PractitionerDTO `json:"items"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
}

// CountResponse total de coincidencias.
type CountResponse struct {
	Total int `json:"total"`
}

// Tipos de evento aceptados por POST /api/directory/sessions/:id/events.
const (
	EventCountry = "country"
	EventRegion  = "region"
	EventSearch  = "search"
	EventPage    = "page"
)

// DirectoryEventRequest evento de UI enviado a una sesión del directorio.
type DirectoryEventRequest struct {
	Type   string   `json:"type"`
	Value  string   `json:"value,omitempty"`  // country / search
	Values []string `json:"values,omitempty"` // region: valor actual del selector de tags
	Page   int      `json:"page,omitempty"`   // page
	Source string   `json:"source,omitempty"` // page: pagination1 | pagination2
}

// TagOption opción del selector de regiones.
type TagOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PaginationView estado de una barra de paginación.
type PaginationView struct {
	ID          string `json:"id"`
	Visible     bool   `json:"visible"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
}

// TagsView estado del selector de regiones.
type TagsView struct {
	Visible bool        `json:"visible"`
	Options []TagOption `json:"options"`
	Value   []string    `json:"value"`
}

// DirectoryView instantánea de la página del directorio.
type DirectoryView struct {
	Items       []PractitionerDTO `json:"items"`
	Status      string            `json:"status"`
	Pagination  []PaginationView  `json:"pagination"`
	Tags        TagsView          `json:"tags"`
	SearchInput string            `json:"search_input"`
	Country     string            `json:"country"`
	Scrolls     int               `json:"scrolls"`
}

// DirectorySessionResponse respuesta al crear o consultar una sesión.
type DirectorySessionResponse struct {
	ID   string        `json:"id"`
	View DirectoryView `json:"view"`
}
