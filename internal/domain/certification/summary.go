package certification

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Requirement horas requeridas por línea del resumen.
type Requirement struct {
	Label    string // etiqueta en el resumen
	Category string // categoría corta que suma a esta línea
	Hours    decimal.Decimal
}

// Requirements horas exigidas para la certificación, en el orden del resumen.
var Requirements = []Requirement{
	{Label: "Core curriculum", Category: CategoryCore, Hours: decimal.NewFromInt(200)},
	{Label: "Anatomy and Physiology", Category: CategoryAnatomy, Hours: decimal.NewFromInt(100)},
	{Label: "Electives", Category: CategoryElective, Hours: decimal.NewFromInt(50)},
	{Label: "Practice", Category: CategoryPractice, Hours: decimal.NewFromInt(100)},
	{Label: "Other", Category: CategoryOther, Hours: decimal.NewFromInt(50)},
}

// CompletionMessage se muestra cuando no quedan horas pendientes.
const CompletionMessage = "Congratulations! You've completed all requirements. Reach out to Kumiko for instructions on getting your AOBTA certificate."

var hundred = decimal.NewFromInt(100)

// CategoryProgress avance de una línea del resumen.
type CategoryProgress struct {
	Label    string          `json:"label"`
	Hours    decimal.Decimal `json:"hours"`
	Required decimal.Decimal `json:"required"`
	Percent  int64           `json:"percent"` // truncado; puede superar 100
}

// Summary avance total hacia la certificación.
type Summary struct {
	Categories         []CategoryProgress `json:"categories"`
	TotalHours         decimal.Decimal    `json:"total_hours"`
	RequiredTotal      decimal.Decimal    `json:"required_total"`
	TowardRequirements decimal.Decimal    `json:"toward_requirements"` // horas con tope por categoría
	Percent            int64              `json:"percent"`
	Remaining          decimal.Decimal    `json:"remaining"`
}

// Summarize acumula horas por categoría. Las categorías desconocidas solo suman al total.
func Summarize(records []Record) Summary {
	byCategory := make(map[string]decimal.Decimal, len(Requirements))
	total := decimal.Zero
	for _, r := range records {
		byCategory[r.Category] = byCategory[r.Category].Add(r.Hours)
		total = total.Add(r.Hours)
	}

	s := Summary{TotalHours: total, RequiredTotal: decimal.Zero, TowardRequirements: decimal.Zero}
	for _, req := range Requirements {
		hours := byCategory[req.Category]
		s.Categories = append(s.Categories, CategoryProgress{
			Label:    req.Label,
			Hours:    hours,
			Required: req.Hours,
			Percent:  percent(hours, req.Hours),
		})
		s.RequiredTotal = s.RequiredTotal.Add(req.Hours)
		s.TowardRequirements = s.TowardRequirements.Add(decimal.Min(hours, req.Hours))
	}
	s.Percent = percent(s.TowardRequirements, s.RequiredTotal)
	s.Remaining = s.RequiredTotal.Sub(s.TowardRequirements)
	return s
}

func percent(part, whole decimal.Decimal) int64 {
	if whole.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(whole).Floor().IntPart()
}

// Done indica que se cubrieron todas las horas requeridas.
func (s Summary) Done() bool {
	return !s.Remaining.IsPositive()
}

// Closing línea final: horas pendientes o felicitación.
func (s Summary) Closing() string {
	if s.Done() {
		return CompletionMessage
	}
	return fmt.Sprintf("Hours remaining for requirements: %s", s.Remaining)
}

// Text representación de texto fijo que muestra la página de progreso.
func (s Summary) Text() string {
	var b strings.Builder
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "%s %s / %s hrs (%d%%)\n", dotted(c.Label), c.Hours, c.Required, c.Percent)
	}
	b.WriteString(strings.Repeat("=", 53) + "\n")
	fmt.Fprintf(&b, "%s %s\n", dotted("Total hrs"), s.TotalHours)
	fmt.Fprintf(&b, "%s %s / %s hrs (%d%%)\n", dotted("Total toward requirements"), s.TowardRequirements, s.RequiredTotal, s.Percent)
	b.WriteString("\n")
	b.WriteString(s.Closing())
	b.WriteString("\n")
	return b.String()
}

// dotted rellena la etiqueta con guiones hasta la columna 31.
func dotted(label string) string {
	const width = 31
	pad := width - len(label) - 1
	if pad < 3 {
		pad = 3
	}
	return label + " " + strings.Repeat("-", pad)
}
