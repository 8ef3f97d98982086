// Package pdf genera el reporte de progreso de certificación de un estudiante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del estudiante + email  │  Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Curso | Categoría | Escuela | Horas          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: horas por categoría / total / línea de cierre      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/clairefro/flc-wix/internal/domain/certification"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 94, Blue: 78}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa certification.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GenerateProgressPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProgressPDF(
	_ context.Context,
	student certification.Student,
	records []certification.Record,
	summary certification.Summary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Certification progress", true).
		WithAuthor("Five Element Learning Center", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(student, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRecordRows(records)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: estudiante (izq) y fecha de emisión (der).
func headerRow(student certification.Student, issued time.Time) core.Row {
	name := nonEmpty(fullName(student), student.Email)
	return row.New(16).Add(
		col.New(8).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(student.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("CERTIFICATION PROGRESS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Issued: "+issued.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cursos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Date", 2, align.Left),
		h("Course", 4, align.Left),
		h("Category", 3, align.Left),
		h("School", 2, align.Left),
		h("Hours", 1, align.Right),
	)
}

// tableRecordRows: una fila por curso completado.
func tableRecordRows(records []certification.Record) []core.Row {
	result := make([]core.Row, 0, len(records))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, r := range records {
		result = append(result, row.New(7).Add(
			cell(r.DateCompleted.Format("2006-01-02"), 2, align.Left),
			cell(nonEmpty(r.CourseName, r.Course), 4, align.Left),
			cell(r.Category, 3, align.Left),
			cell(nonEmpty(r.School, "-"), 2, align.Left),
			cell(r.Hours.String(), 1, align.Right),
		))
	}
	return result
}

// summaryRows: avance por categoría y línea de cierre.
func summaryRows(s certification.Summary) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, c := range s.Categories {
		rows = append(rows, summaryLine(c.Label, fmt.Sprintf("%s / %s hrs (%d%%)", c.Hours, c.Required, c.Percent), false))
	}
	rows = append(rows,
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}),
		summaryLine("Total hrs", s.TotalHours.String(), false),
		summaryLine("Total toward requirements",
			fmt.Sprintf("%s / %s hrs (%d%%)", s.TowardRequirements, s.RequiredTotal, s.Percent), true),
		row.New(12).Add(col.New(12).Add(
			text.New(s.Closing(), props.Text{Size: 9, Top: 4, Color: colorPrimary}),
		)),
	)
	return rows
}

func summaryLine(label, value string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{Style: style, Size: 9, Top: 1})),
		col.New(6).Add(text.New(value, props.Text{Style: style, Size: 9, Align: align.Right, Top: 1, Right: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func fullName(s certification.Student) string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
