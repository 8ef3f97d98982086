// Package directory contiene las reglas puras del directorio de practicantes:
// predicado de búsqueda, paginación, selección única de región y texto del indicador.
package directory

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPageSize tamaño de página del directorio.
const DefaultPageSize = 40

// ResetAll valor del dropdown de país que significa "todos los países".
const ResetAll = "RESET_ALL"

// Textos fijos del indicador de estado.
const (
	NoResultsText = "No practitioners found"
	LoadErrorText = "Unable to load results, please retry"
)

// Predicate filtro activo: igualdad de país, "contiene alguna" de las regiones y substring del nombre.
// Los campos vacíos no filtran.
type Predicate struct {
	Country string
	Regions []string
	Name    string
}

// Clone copia el predicado (Regions incluido) para usarlo fuera del lock del controlador.
func (p Predicate) Clone() Predicate {
	out := p
	if p.Regions != nil {
		out.Regions = append([]string(nil), p.Regions...)
	}
	return out
}

// IsZero indica que el predicado no filtra nada.
func (p Predicate) IsZero() bool {
	return p.Country == "" && len(p.Regions) == 0 && p.Name == ""
}

// TotalPages devuelve max(1, ceil(total/pageSize)).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage lleva n al rango [1, totalPages].
func ClampPage(n, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if n > totalPages {
		n = totalPages
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Skip offset de la ventana para la página dada (1-indexada).
func Skip(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// ReduceTagSelection reduce la selección de un widget multi-selección a un único tag.
//
//	incoming vacío      -> ninguno
//	un solo elemento    -> ese elemento
//	más de un elemento  -> el primero distinto de previous; si no hay, ninguno
func ReduceTagSelection(previous string, incoming []string) string {
	switch len(incoming) {
	case 0:
		return ""
	case 1:
		return incoming[0]
	}
	for _, tag := range incoming {
		if tag != previous {
			return tag
		}
	}
	return ""
}

// LocationClause arma " in {regiones}, {país}" para el indicador.
// Sin país ni regiones devuelve "". La coma tras las regiones se mantiene aunque falte el país.
func LocationClause(country string, regions []string) string {
	if country == "" && len(regions) == 0 {
		return ""
	}
	regionPart := ""
	if len(regions) > 0 {
		regionPart = strings.Join(regions, ", ") + ", "
	}
	return " in " + regionPart + country
}

// StatusText texto del indicador de resultados para la página visible.
func StatusText(p Predicate, total, currentPage, pageSize, visible int) string {
	if visible == 0 {
		return NoResultsText
	}
	noun := "practitioner"
	if total > 1 {
		noun += "s"
	}
	location := LocationClause(p.Country, p.Regions)

	var msg string
	if total <= pageSize {
		msg = fmt.Sprintf("%d %s found%s", total, noun, location)
	} else {
		start := Skip(currentPage, pageSize) + 1
		end := start + visible - 1
		msg = fmt.Sprintf("Showing %d-%d of %d %s found%s", start, end, total, noun, location)
	}
	if p.Name != "" {
		msg += " matching search"
	}
	return msg
}

// DistinctRegions devuelve las regiones únicas, no vacías y ordenadas.
func DistinctRegions(regions []string) []string {
	seen := make(map[string]struct{}, len(regions))
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
