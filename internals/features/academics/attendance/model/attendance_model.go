package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============== SESSIONS =============== */

type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_session_id"`

	AttendanceSessionInstituteID uuid.UUID  `gorm:"column:attendance_session_institute_id;type:uuid;not null;index" json:"attendance_session_institute_id"`
	AttendanceSessionCohortID    uuid.UUID  `gorm:"column:attendance_session_cohort_id;type:uuid;not null;index" json:"attendance_session_cohort_id"`
	AttendanceSessionEpicID      *uuid.UUID `gorm:"column:attendance_session_epic_id;type:uuid" json:"attendance_session_epic_id,omitempty"`

	AttendanceSessionDate  time.Time `gorm:"column:attendance_session_date;type:date;not null" json:"attendance_session_date"`
	AttendanceSessionTopic *string   `gorm:"column:attendance_session_topic;type:text" json:"attendance_session_topic,omitempty"`

	AttendanceSessionCreatedAt time.Time      `gorm:"column:attendance_session_created_at;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt *time.Time     `gorm:"column:attendance_session_updated_at;autoUpdateTime" json:"attendance_session_updated_at,omitempty"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

/* =============== RECORDS =============== */

// one row per (session, student); unique constraint in the DB
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_record_id"`

	AttendanceRecordSessionID uuid.UUID `gorm:"column:attendance_record_session_id;type:uuid;not null;uniqueIndex:uq_attendance_record_session_student" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"column:attendance_record_student_id;type:uuid;not null;uniqueIndex:uq_attendance_record_session_student" json:"attendance_record_student_id"`

	AttendanceRecordStatus string  `gorm:"column:attendance_record_status;type:text;not null" json:"attendance_record_status"` // present|absent|late|excused
	AttendanceRecordNote   *string `gorm:"column:attendance_record_note;type:text" json:"attendance_record_note,omitempty"`

	AttendanceRecordCreatedAt time.Time  `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

/* =============== ENUM GUARD =============== */

var ValidAttendanceStatuses = map[string]struct{}{
	"present": {},
	"absent":  {},
	"late":    {},
	"excused": {},
}
