// Package certification reglas de reporte de horas de formación: mapeo de categorías del
// formulario de progreso, orden de los registros y resumen contra las horas requeridas.
package certification

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/clairefro/flc-wix/internal/domain/entity"
)

// Categorías cortas usadas en reportes.
const (
	CategoryCore     = "Core curriculum"
	CategoryAnatomy  = "Anatomy and Physiology"
	CategoryElective = "Elective"
	CategoryPractice = "Practice"
	CategoryOther    = "Other"
	CategoryUnknown  = "Unknown"
)

var categoryMap = map[string]string{
	"Core curriculum (Levels 1 -10)": CategoryCore,
	"Anatomy and Physiology":         CategoryAnatomy,
	"Elective":                       CategoryElective,
	"Practice":                       CategoryPractice,
	"Other":                          CategoryOther,
}

// MapCategory traduce la etiqueta del formulario a la categoría corta ("Unknown" si no se reconoce).
func MapCategory(raw string) string {
	if c, ok := categoryMap[raw]; ok {
		return c
	}
	return CategoryUnknown
}

// Record fila del reporte de un estudiante.
type Record struct {
	DateCompleted time.Time       `json:"date_completed"`
	Hours         decimal.Decimal `json:"hours"`
	School        string          `json:"school"`
	Instructor    string          `json:"instructor"`
	CourseName    string          `json:"course_name"`
	Course        string          `json:"course"`
	Category      string          `json:"category"`
	Link          string          `json:"link,omitempty"`
	Note          string          `json:"note,omitempty"`
}

// FromEntry convierte un envío del formulario en fila de reporte.
func FromEntry(e *entity.ProgressEntry) Record {
	return Record{
		DateCompleted: e.DateCompleted,
		Hours:         e.Hours,
		School:        e.School,
		Instructor:    e.Instructor,
		CourseName:    e.CourseName,
		Course:        e.Course,
		Category:      MapCategory(e.Category),
		Link:          e.Link,
		Note:          e.Note,
	}
}

// SortRecords ordena por categoría y luego por curso, conservando el orden de lectura en empates.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Category != records[j].Category {
			return records[i].Category < records[j].Category
		}
		return records[i].Course < records[j].Course
	})
}

// Student datos únicos de un estudiante en la colección de formularios.
type Student struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UniqueStudents deduplica por email (gana la primera aparición) y ordena por "nombre apellido"
// sin distinguir mayúsculas.
func UniqueStudents(entries []*entity.ProgressEntry) []Student {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Student, 0)
	for _, e := range entries {
		if _, ok := seen[e.Email]; ok {
			continue
		}
		seen[e.Email] = struct{}{}
		out = append(out, Student{Email: e.Email, FirstName: e.FirstName, LastName: e.LastName})
	}

	fold := cases.Fold()
	key := func(s Student) string {
		return fold.String(strings.TrimSpace(s.FirstName + " " + s.LastName))
	}
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}

// EmailsMissingCourse devuelve los emails (únicos, en orden de aparición) de all que no figuran en taken.
func EmailsMissingCourse(all, taken []*entity.ProgressEntry) []string {
	done := make(map[string]struct{}, len(taken))
	for _, e := range taken {
		done[e.Email] = struct{}{}
	}
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0)
	for _, e := range all {
		if _, ok := seen[e.Email]; ok {
			continue
		}
		seen[e.Email] = struct{}{}
		if _, ok := done[e.Email]; !ok {
			out = append(out, e.Email)
		}
	}
	return out
}
