package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "campushq_backend/internals/features/finance/feestructures/model"
)

/* ======================= SCHOLARSHIPS ======================= */

type CreateScholarshipRequest struct {
	ScholarshipName                      string          `json:"scholarship_name" validate:"required,min=2,max=120"`
	ScholarshipPercent                   decimal.Decimal `json:"scholarship_percent" validate:"required"`
	ScholarshipAdditionalDiscountPercent decimal.Decimal `json:"scholarship_additional_discount_percent"`
}

func (r CreateScholarshipRequest) ToModel(instituteID uuid.UUID) *model.ScholarshipModel {
	return &model.ScholarshipModel{
		ScholarshipInstituteID:               instituteID,
		ScholarshipName:                      r.ScholarshipName,
		ScholarshipPercent:                   r.ScholarshipPercent,
		ScholarshipAdditionalDiscountPercent: r.ScholarshipAdditionalDiscountPercent,
		ScholarshipIsActive:                  true,
	}
}

type UpdateScholarshipRequest struct {
	ScholarshipName                      *string          `json:"scholarship_name" validate:"omitempty,min=2,max=120"`
	ScholarshipPercent                   *decimal.Decimal `json:"scholarship_percent"`
	ScholarshipAdditionalDiscountPercent *decimal.Decimal `json:"scholarship_additional_discount_percent"`
	ScholarshipIsActive                  *bool            `json:"scholarship_is_active"`
}

func (r UpdateScholarshipRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.ScholarshipName != nil {
		patch["scholarship_name"] = *r.ScholarshipName
	}
	if r.ScholarshipPercent != nil {
		patch["scholarship_percent"] = *r.ScholarshipPercent
	}
	if r.ScholarshipAdditionalDiscountPercent != nil {
		patch["scholarship_additional_discount_percent"] = *r.ScholarshipAdditionalDiscountPercent
	}
	if r.ScholarshipIsActive != nil {
		patch["scholarship_is_active"] = *r.ScholarshipIsActive
	}
	return patch
}

type ScholarshipResponse struct {
	ScholarshipID                        uuid.UUID       `json:"scholarship_id"`
	ScholarshipName                      string          `json:"scholarship_name"`
	ScholarshipPercent                   decimal.Decimal `json:"scholarship_percent"`
	ScholarshipAdditionalDiscountPercent decimal.Decimal `json:"scholarship_additional_discount_percent"`
	ScholarshipIsActive                  bool            `json:"scholarship_is_active"`
	ScholarshipCreatedAt                 time.Time       `json:"scholarship_created_at"`
}

func ScholarshipFromModel(m model.ScholarshipModel) ScholarshipResponse {
	return ScholarshipResponse{
		ScholarshipID:                        m.ScholarshipID,
		ScholarshipName:                      m.ScholarshipName,
		ScholarshipPercent:                   m.ScholarshipPercent,
		ScholarshipAdditionalDiscountPercent: m.ScholarshipAdditionalDiscountPercent,
		ScholarshipIsActive:                  m.ScholarshipIsActive,
		ScholarshipCreatedAt:                 m.ScholarshipCreatedAt,
	}
}

func ScholarshipFromModels(rows []model.ScholarshipModel) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ScholarshipFromModel(m))
	}
	return out
}

/* ======================= AWARDS ======================= */

type GrantScholarshipRequest struct {
	StudentScholarshipStudentID     uuid.UUID `json:"student_scholarship_student_id" validate:"required"`
	StudentScholarshipScholarshipID uuid.UUID `json:"student_scholarship_scholarship_id" validate:"required"`
}

type StudentScholarshipResponse struct {
	StudentScholarshipID            uuid.UUID            `json:"student_scholarship_id"`
	StudentScholarshipStudentID     uuid.UUID            `json:"student_scholarship_student_id"`
	StudentScholarshipScholarshipID uuid.UUID            `json:"student_scholarship_scholarship_id"`
	StudentScholarshipCreatedAt     time.Time            `json:"student_scholarship_created_at"`
	Scholarship                     *ScholarshipResponse `json:"scholarship,omitempty"`
}

func AwardFromModel(m model.StudentScholarshipModel) StudentScholarshipResponse {
	resp := StudentScholarshipResponse{
		StudentScholarshipID:            m.StudentScholarshipID,
		StudentScholarshipStudentID:     m.StudentScholarshipStudentID,
		StudentScholarshipScholarshipID: m.StudentScholarshipScholarshipID,
		StudentScholarshipCreatedAt:     m.StudentScholarshipCreatedAt,
	}
	if m.Scholarship != nil {
		s := ScholarshipFromModel(*m.Scholarship)
		resp.Scholarship = &s
	}
	return resp
}

/* ======================= WAIVERS ======================= */

type CreateFeeWaiverRequest struct {
	FeeWaiverStudentID   uuid.UUID `json:"fee_waiver_student_id" validate:"required"`
	FeeWaiverTargetKind  string    `json:"fee_waiver_target_kind" validate:"required,oneof=admission one_shot installment"`
	FeeWaiverSemester    int16     `json:"fee_waiver_semester" validate:"min=0,max=20"`
	FeeWaiverInstallment int16     `json:"fee_waiver_installment" validate:"min=0,max=12"`
	FeeWaiverReason      string    `json:"fee_waiver_reason" validate:"max=255"`
}

func (r CreateFeeWaiverRequest) ToModel(instituteID uuid.UUID, grantedBy *uuid.UUID) *model.FeeWaiverModel {
	return &model.FeeWaiverModel{
		FeeWaiverInstituteID: instituteID,
		FeeWaiverStudentID:   r.FeeWaiverStudentID,
		FeeWaiverTargetKind:  model.FeeWaiverTargetKind(r.FeeWaiverTargetKind),
		FeeWaiverSemester:    r.FeeWaiverSemester,
		FeeWaiverInstallment: r.FeeWaiverInstallment,
		FeeWaiverReason:      r.FeeWaiverReason,
		FeeWaiverGrantedBy:   grantedBy,
	}
}

type FeeWaiverResponse struct {
	FeeWaiverID          uuid.UUID `json:"fee_waiver_id"`
	FeeWaiverStudentID   uuid.UUID `json:"fee_waiver_student_id"`
	FeeWaiverTargetKind  string    `json:"fee_waiver_target_kind"`
	FeeWaiverSemester    int16     `json:"fee_waiver_semester"`
	FeeWaiverInstallment int16     `json:"fee_waiver_installment"`
	FeeWaiverReason      string    `json:"fee_waiver_reason,omitempty"`
	FeeWaiverCreatedAt   time.Time `json:"fee_waiver_created_at"`
}

func WaiverFromModel(m model.FeeWaiverModel) FeeWaiverResponse {
	return FeeWaiverResponse{
		FeeWaiverID:          m.FeeWaiverID,
		FeeWaiverStudentID:   m.FeeWaiverStudentID,
		FeeWaiverTargetKind:  string(m.FeeWaiverTargetKind),
		FeeWaiverSemester:    m.FeeWaiverSemester,
		FeeWaiverInstallment: m.FeeWaiverInstallment,
		FeeWaiverReason:      m.FeeWaiverReason,
		FeeWaiverCreatedAt:   m.FeeWaiverCreatedAt,
	}
}

func WaiversFromModels(rows []model.FeeWaiverModel) []FeeWaiverResponse {
	out := make([]FeeWaiverResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, WaiverFromModel(m))
	}
	return out
}
