package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "campushq_backend/internals/features/users/students/model"
)

/* ======================= REQUESTS ======================= */

type CreateStudentRequest struct {
	StudentCohortID   uuid.UUID `json:"student_cohort_id" validate:"required"`
	StudentRollNumber string    `json:"student_roll_number" validate:"required,min=1,max=40"`
	StudentFullName   string    `json:"student_full_name" validate:"required,min=2,max=120"`
	StudentEmail      string    `json:"student_email" validate:"omitempty,email,max=120"`
	StudentPhone      string    `json:"student_phone" validate:"omitempty,max=20"`

	StudentEntrancePercentile *decimal.Decimal `json:"student_entrance_percentile"`
}

func (r CreateStudentRequest) ToModel(instituteID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentInstituteID:        instituteID,
		StudentCohortID:           r.StudentCohortID,
		StudentRollNumber:         r.StudentRollNumber,
		StudentFullName:           r.StudentFullName,
		StudentEmail:              r.StudentEmail,
		StudentPhone:              r.StudentPhone,
		StudentEntrancePercentile: r.StudentEntrancePercentile,
		StudentPaymentPlan:        "not_selected",
		StudentIsActive:           true,
	}
}

type UpdateStudentRequest struct {
	StudentCohortID   *uuid.UUID `json:"student_cohort_id"`
	StudentRollNumber *string    `json:"student_roll_number" validate:"omitempty,min=1,max=40"`
	StudentFullName   *string    `json:"student_full_name" validate:"omitempty,min=2,max=120"`
	StudentEmail      *string    `json:"student_email" validate:"omitempty,email,max=120"`
	StudentPhone      *string    `json:"student_phone" validate:"omitempty,max=20"`

	StudentEntrancePercentile *decimal.Decimal `json:"student_entrance_percentile"`
	StudentIsActive           *bool            `json:"student_is_active"`
}

func (r UpdateStudentRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.StudentCohortID != nil {
		patch["student_cohort_id"] = *r.StudentCohortID
	}
	if r.StudentRollNumber != nil {
		patch["student_roll_number"] = *r.StudentRollNumber
	}
	if r.StudentFullName != nil {
		patch["student_full_name"] = *r.StudentFullName
	}
	if r.StudentEmail != nil {
		patch["student_email"] = *r.StudentEmail
	}
	if r.StudentPhone != nil {
		patch["student_phone"] = *r.StudentPhone
	}
	if r.StudentEntrancePercentile != nil {
		patch["student_entrance_percentile"] = *r.StudentEntrancePercentile
	}
	if r.StudentIsActive != nil {
		patch["student_is_active"] = *r.StudentIsActive
	}
	return patch
}

type SelectPaymentPlanRequest struct {
	StudentPaymentPlan string `json:"student_payment_plan" validate:"required,oneof=one_shot semester_wise installment_wise"`
}

/* ======================= RESPONSES ======================= */

type StudentResponse struct {
	StudentID uuid.UUID `json:"student_id"`

	StudentCohortID   uuid.UUID `json:"student_cohort_id"`
	StudentRollNumber string    `json:"student_roll_number"`
	StudentFullName   string    `json:"student_full_name"`
	StudentEmail      string    `json:"student_email,omitempty"`
	StudentPhone      string    `json:"student_phone,omitempty"`

	StudentEntrancePercentile *decimal.Decimal `json:"student_entrance_percentile,omitempty"`

	StudentPaymentPlan  string     `json:"student_payment_plan"`
	StudentPlanLockedAt *time.Time `json:"student_plan_locked_at,omitempty"`

	StudentIsActive  bool      `json:"student_is_active"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func FromModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:                 m.StudentID,
		StudentCohortID:           m.StudentCohortID,
		StudentRollNumber:         m.StudentRollNumber,
		StudentFullName:           m.StudentFullName,
		StudentEmail:              m.StudentEmail,
		StudentPhone:              m.StudentPhone,
		StudentEntrancePercentile: m.StudentEntrancePercentile,
		StudentPaymentPlan:        m.StudentPaymentPlan,
		StudentPlanLockedAt:       m.StudentPlanLockedAt,
		StudentIsActive:           m.StudentIsActive,
		StudentCreatedAt:          m.StudentCreatedAt,
	}
}

func FromModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
