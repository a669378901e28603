package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportType string

const (
	ReportAttendanceSummary ReportType = "attendance_summary"
	ReportFeeCollection     ReportType = "fee_collection"
)

type ReportStatus string

const (
	ReportStatusReady  ReportStatus = "ready"
	ReportStatusFailed ReportStatus = "failed"
)

// ReportModel stores a generated snapshot so heavy aggregates are rendered
// once and re-served from the row.
type ReportModel struct {
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`

	ReportInstituteID uuid.UUID  `gorm:"column:report_institute_id;type:uuid;not null;index" json:"report_institute_id"`
	ReportCohortID    *uuid.UUID `gorm:"column:report_cohort_id;type:uuid;index" json:"report_cohort_id,omitempty"`

	ReportType   ReportType   `gorm:"column:report_type;type:text;not null" json:"report_type"`
	ReportStatus ReportStatus `gorm:"column:report_status;type:text;not null;default:ready" json:"report_status"`

	ReportContent datatypes.JSON `gorm:"column:report_content;type:jsonb" json:"report_content,omitempty"`
	ReportError   string         `gorm:"column:report_error;type:varchar(255)" json:"report_error,omitempty"`

	ReportGeneratedBy *uuid.UUID `gorm:"column:report_generated_by;type:uuid" json:"report_generated_by,omitempty"`

	ReportCreatedAt time.Time      `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportDeletedAt gorm.DeletedAt `gorm:"column:report_deleted_at;index" json:"report_deleted_at,omitempty"`
}

func (ReportModel) TableName() string { return "reports" }
