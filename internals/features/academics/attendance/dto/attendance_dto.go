package dto

import (
	"time"

	"github.com/google/uuid"

	m "campushq_backend/internals/features/academics/attendance/model"
)

/* =============== REQUESTS =============== */

type CreateSessionRequest struct {
	AttendanceSessionCohortID uuid.UUID  `json:"attendance_session_cohort_id" validate:"required"`
	AttendanceSessionEpicID   *uuid.UUID `json:"attendance_session_epic_id"   validate:"omitempty"`
	AttendanceSessionDate     time.Time  `json:"attendance_session_date"      validate:"required"`
	AttendanceSessionTopic    *string    `json:"attendance_session_topic"     validate:"omitempty"`
}

func (r CreateSessionRequest) ToModel(instituteID uuid.UUID) *m.AttendanceSessionModel {
	return &m.AttendanceSessionModel{
		AttendanceSessionInstituteID: instituteID,
		AttendanceSessionCohortID:    r.AttendanceSessionCohortID,
		AttendanceSessionEpicID:      r.AttendanceSessionEpicID,
		AttendanceSessionDate:        r.AttendanceSessionDate,
		AttendanceSessionTopic:       r.AttendanceSessionTopic,
	}
}

// MarkRecordsRequest is the bulk upsert payload for one session.
type MarkRecordsRequest struct {
	Records []MarkRecord `json:"records" validate:"required,min=1,dive"`
}

type MarkRecord struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=present absent late excused"`
	Note      *string   `json:"note"       validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type SessionResponse struct {
	AttendanceSessionID       uuid.UUID  `json:"attendance_session_id"`
	AttendanceSessionCohortID uuid.UUID  `json:"attendance_session_cohort_id"`
	AttendanceSessionEpicID   *uuid.UUID `json:"attendance_session_epic_id,omitempty"`
	AttendanceSessionDate     time.Time  `json:"attendance_session_date"`
	AttendanceSessionTopic    *string    `json:"attendance_session_topic,omitempty"`
	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at"`
}

func FromSessionModel(x m.AttendanceSessionModel) SessionResponse {
	return SessionResponse{
		AttendanceSessionID:        x.AttendanceSessionID,
		AttendanceSessionCohortID:  x.AttendanceSessionCohortID,
		AttendanceSessionEpicID:    x.AttendanceSessionEpicID,
		AttendanceSessionDate:      x.AttendanceSessionDate,
		AttendanceSessionTopic:     x.AttendanceSessionTopic,
		AttendanceSessionCreatedAt: x.AttendanceSessionCreatedAt,
	}
}

func FromSessionModels(list []m.AttendanceSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromSessionModel(it))
	}
	return out
}

type RecordResponse struct {
	AttendanceRecordID        uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordSessionID uuid.UUID `json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id"`
	AttendanceRecordStatus    string    `json:"attendance_record_status"`
	AttendanceRecordNote      *string   `json:"attendance_record_note,omitempty"`
}

func FromRecordModels(list []m.AttendanceRecordModel) []RecordResponse {
	out := make([]RecordResponse, 0, len(list))
	for _, it := range list {
		out = append(out, RecordResponse{
			AttendanceRecordID:        it.AttendanceRecordID,
			AttendanceRecordSessionID: it.AttendanceRecordSessionID,
			AttendanceRecordStudentID: it.AttendanceRecordStudentID,
			AttendanceRecordStatus:    it.AttendanceRecordStatus,
			AttendanceRecordNote:      it.AttendanceRecordNote,
		})
	}
	return out
}

// AttendanceSummaryResponse aggregates a student's (or cohort's) attendance.
type AttendanceSummaryResponse struct {
	TotalSessions int64   `json:"total_sessions"`
	Present       int64   `json:"present"`
	Absent        int64   `json:"absent"`
	Late          int64   `json:"late"`
	Excused       int64   `json:"excused"`
	Percentage    float64 `json:"percentage"` // (present + late) / total, excused excluded from the denominator
}
