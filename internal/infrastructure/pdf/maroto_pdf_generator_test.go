package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clairefro/flc-wix/internal/domain/certification"
	"github.com/clairefro/flc-wix/internal/infrastructure/pdf"
)

func TestGenerateProgressPDF_DevuelvePDF(t *testing.T) {
	records := []certification.Record{
		{
			DateCompleted: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Hours:         decimal.NewFromInt(12),
			School:        "FLC",
			CourseName:    "Level 1",
			Course:        "L1",
			Category:      certification.CategoryCore,
		},
		{
			DateCompleted: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			Hours:         decimal.RequireFromString("7.5"),
			Course:        "A&P 1",
			Category:      certification.CategoryAnatomy,
		},
	}
	student := certification.Student{Email: "kumiko@example.com", FirstName: "Kumiko"}

	out, err := pdf.NewMarotoPDFGenerator().GenerateProgressPDF(
		context.Background(), student, records, certification.Summarize(records))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe comenzar con la cabecera PDF")
}

func TestGenerateProgressPDF_SinRegistros(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().GenerateProgressPDF(
		context.Background(), certification.Student{Email: "x@example.com"}, nil, certification.Summarize(nil))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
