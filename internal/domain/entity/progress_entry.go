package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProgressEntry envío del formulario de progreso del estudiante (un curso completado).
// Category guarda la etiqueta cruda del formulario; el mapeo a categoría corta vive en certification.
type ProgressEntry struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	DateCompleted time.Time
	Hours         decimal.Decimal
	School        string
	Instructor    string
	CourseName    string
	Course        string
	Category      string
	Link          string
	Note          string
	CreatedAt     time.Time
}
