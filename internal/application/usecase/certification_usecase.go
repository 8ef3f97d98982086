package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/domain/certification"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
)

// DefaultFormsPageSize tamaño de página al recorrer la colección de formularios.
const DefaultFormsPageSize = 50

// ReportGenerator genera el PDF del reporte de progreso.
type ReportGenerator interface {
	GenerateProgressPDF(ctx context.Context, student certification.Student, records []certification.Record, summary certification.Summary) ([]byte, error)
}

// CertificationUseCase reportes de horas de formación.
type CertificationUseCase struct {
	entries  repository.ProgressEntryRepository
	pdf      ReportGenerator
	pageSize int
	log      zerolog.Logger
}

// NewCertificationUseCase construye el caso de uso. pageSize <= 0 usa DefaultFormsPageSize.
func NewCertificationUseCase(entries repository.ProgressEntryRepository, pdf ReportGenerator, pageSize int, log zerolog.Logger) *CertificationUseCase {
	if pageSize <= 0 {
		pageSize = DefaultFormsPageSize
	}
	return &CertificationUseCase{entries: entries, pdf: pdf, pageSize: pageSize, log: log}
}

// Records registros del estudiante ordenados por categoría y curso.
func (uc *CertificationUseCase) Records(ctx context.Context, email string) (*dto.StudentRecordsResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.entriesFor(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.StudentRecordsResponse{Email: email, Records: toRecords(entries)}, nil
}

// Students estudiantes únicos de la colección de formularios.
func (uc *CertificationUseCase) Students(ctx context.Context) ([]certification.Student, error) {
	all, err := readAll(ctx, uc.pageSize, uc.entries.ListAll)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return certification.UniqueStudents(all), nil
}

// Summary resumen contra las horas requeridas.
func (uc *CertificationUseCase) Summary(records []certification.Record) *dto.SummaryResponse {
	s := certification.Summarize(records)
	return &dto.SummaryResponse{Text: s.Text(), Details: s}
}

// ReportPDF PDF del reporte del estudiante.
func (uc *CertificationUseCase) ReportPDF(ctx context.Context, email string) ([]byte, error) {
	entries, err := uc.entriesFor(ctx, email)
	if err != nil {
		return nil, err
	}
	student := certification.Student{Email: email}
	if len(entries) > 0 {
		student.FirstName = entries[0].FirstName
		student.LastName = entries[0].LastName
	}
	records := toRecords(entries)
	out, err := uc.pdf.GenerateProgressPDF(ctx, student, records, certification.Summarize(records))
	if err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("error generando reporte PDF")
		return nil, err
	}
	return out, nil
}

func (uc *CertificationUseCase) entriesFor(ctx context.Context, email string) ([]*entity.ProgressEntry, error) {
	entries, err := readAll(ctx, uc.pageSize, func(ctx context.Context, limit, offset int) ([]*entity.ProgressEntry, error) {
		return uc.entries.ListByEmail(ctx, email, limit, offset)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("error leyendo formularios de progreso")
		return nil, fmt.Errorf("list progress entries: %w", err)
	}
	return entries, nil
}

func toRecords(entries []*entity.ProgressEntry) []certification.Record {
	records := make([]certification.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, certification.FromEntry(e))
	}
	certification.SortRecords(records)
	return records
}

// readAll recorre páginas de tamaño pageSize hasta recibir una página incompleta.
func readAll(ctx context.Context, pageSize int, page func(ctx context.Context, limit, offset int) ([]*entity.ProgressEntry, error)) ([]*entity.ProgressEntry, error) {
	var all []*entity.ProgressEntry
	for offset := 0; ; offset += pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := page(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < pageSize {
			return all, nil
		}
	}
}
