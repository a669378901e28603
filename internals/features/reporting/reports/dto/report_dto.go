package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "campushq_backend/internals/features/reporting/reports/model"
)

type GenerateReportRequest struct {
	ReportType     string    `json:"report_type" validate:"required,oneof=attendance_summary fee_collection"`
	ReportCohortID uuid.UUID `json:"report_cohort_id" validate:"required"`
}

type ReportResponse struct {
	ReportID uuid.UUID `json:"report_id"`

	ReportCohortID *uuid.UUID `json:"report_cohort_id,omitempty"`
	ReportType     string     `json:"report_type"`
	ReportStatus   string     `json:"report_status"`

	ReportContent datatypes.JSON `json:"report_content,omitempty"`
	ReportError   string         `json:"report_error,omitempty"`

	ReportCreatedAt time.Time `json:"report_created_at"`
}

func FromModel(m model.ReportModel) ReportResponse {
	return ReportResponse{
		ReportID:        m.ReportID,
		ReportCohortID:  m.ReportCohortID,
		ReportType:      string(m.ReportType),
		ReportStatus:    string(m.ReportStatus),
		ReportContent:   m.ReportContent,
		ReportError:     m.ReportError,
		ReportCreatedAt: m.ReportCreatedAt,
	}
}

func FromModels(rows []model.ReportModel) []ReportResponse {
	out := make([]ReportResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
