package dto

import "github.com/clairefro/flc-wix/internal/domain/certification"

// SummaryResponse resumen de progreso hacia la certificación.
type SummaryResponse struct {
	Text    string                `json:"text"`
	Details certification.Summary `json:"details"`
}

// StudentRecordsResponse registros de un estudiante.
type StudentRecordsResponse struct {
	Email   string                 `json:"email"`
	Records []certification.Record `json:"records"`
}
