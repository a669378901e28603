package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	model "campushq_backend/internals/features/finance/feestructures/model"
)

/* ======================= REQUESTS ======================= */

type CreateFeeStructureRequest struct {
	FeeStructureCohortID  uuid.UUID  `json:"fee_structure_cohort_id" validate:"required"`
	FeeStructureStudentID *uuid.UUID `json:"fee_structure_student_id"`
	FeeStructureScope     string     `json:"fee_structure_scope" validate:"required,oneof=cohort custom"`

	FeeStructureTotalProgramFee decimal.Decimal `json:"fee_structure_total_program_fee" validate:"required"`
	FeeStructureAdmissionFee    decimal.Decimal `json:"fee_structure_admission_fee"`

	FeeStructureNumberOfSemesters       int16 `json:"fee_structure_number_of_semesters" validate:"required,min=1,max=20"`
	FeeStructureInstallmentsPerSemester int16 `json:"fee_structure_installments_per_semester" validate:"min=1,max=12"`

	FeeStructureOneShotDiscountPercent decimal.Decimal `json:"fee_structure_one_shot_discount_percent"`
	FeeStructureGSTPercent             decimal.Decimal `json:"fee_structure_gst_percent"`
	FeeStructureProgramFeeIncludesGST  bool            `json:"fee_structure_program_fee_includes_gst"`

	FeeStructureEqualScholarshipDistribution bool `json:"fee_structure_equal_scholarship_distribution"`

	FeeStructureSemesterMonths int16 `json:"fee_structure_semester_months" validate:"min=0,max=12"`

	FeeStructureCustomDatesEnabled bool           `json:"fee_structure_custom_dates_enabled"`
	FeeStructureCustomDueDates     datatypes.JSON `json:"fee_structure_custom_due_dates"`
}

func (r CreateFeeStructureRequest) ToModel(instituteID uuid.UUID) *model.FeeStructureModel {
	ips := r.FeeStructureInstallmentsPerSemester
	if ips == 0 {
		ips = 1
	}
	months := r.FeeStructureSemesterMonths
	if months == 0 {
		months = 6
	}
	return &model.FeeStructureModel{
		FeeStructureInstituteID:                  instituteID,
		FeeStructureCohortID:                     r.FeeStructureCohortID,
		FeeStructureStudentID:                    r.FeeStructureStudentID,
		FeeStructureScope:                        model.FeeStructureScope(r.FeeStructureScope),
		FeeStructureTotalProgramFee:              r.FeeStructureTotalProgramFee,
		FeeStructureAdmissionFee:                 r.FeeStructureAdmissionFee,
		FeeStructureNumberOfSemesters:            r.FeeStructureNumberOfSemesters,
		FeeStructureInstallmentsPerSemester:      ips,
		FeeStructureOneShotDiscountPercent:       r.FeeStructureOneShotDiscountPercent,
		FeeStructureGSTPercent:                   r.FeeStructureGSTPercent,
		FeeStructureProgramFeeIncludesGST:        r.FeeStructureProgramFeeIncludesGST,
		FeeStructureEqualScholarshipDistribution: r.FeeStructureEqualScholarshipDistribution,
		FeeStructureSemesterMonths:               months,
		FeeStructureCustomDatesEnabled:           r.FeeStructureCustomDatesEnabled,
		FeeStructureCustomDueDates:               r.FeeStructureCustomDueDates,
	}
}

type UpdateFeeStructureRequest struct {
	FeeStructureTotalProgramFee *decimal.Decimal `json:"fee_structure_total_program_fee"`
	FeeStructureAdmissionFee    *decimal.Decimal `json:"fee_structure_admission_fee"`

	FeeStructureNumberOfSemesters       *int16 `json:"fee_structure_number_of_semesters" validate:"omitempty,min=1,max=20"`
	FeeStructureInstallmentsPerSemester *int16 `json:"fee_structure_installments_per_semester" validate:"omitempty,min=1,max=12"`

	FeeStructureOneShotDiscountPercent *decimal.Decimal `json:"fee_structure_one_shot_discount_percent"`
	FeeStructureGSTPercent             *decimal.Decimal `json:"fee_structure_gst_percent"`
	FeeStructureProgramFeeIncludesGST  *bool            `json:"fee_structure_program_fee_includes_gst"`

	FeeStructureEqualScholarshipDistribution *bool `json:"fee_structure_equal_scholarship_distribution"`

	FeeStructureSemesterMonths *int16 `json:"fee_structure_semester_months" validate:"omitempty,min=1,max=12"`

	FeeStructureCustomDatesEnabled *bool           `json:"fee_structure_custom_dates_enabled"`
	FeeStructureCustomDueDates     *datatypes.JSON `json:"fee_structure_custom_due_dates"`
}

func (r UpdateFeeStructureRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.FeeStructureTotalProgramFee != nil {
		patch["fee_structure_total_program_fee"] = *r.FeeStructureTotalProgramFee
	}
	if r.FeeStructureAdmissionFee != nil {
		patch["fee_structure_admission_fee"] = *r.FeeStructureAdmissionFee
	}
	if r.FeeStructureNumberOfSemesters != nil {
		patch["fee_structure_number_of_semesters"] = *r.FeeStructureNumberOfSemesters
	}
	if r.FeeStructureInstallmentsPerSemester != nil {
		patch["fee_structure_installments_per_semester"] = *r.FeeStructureInstallmentsPerSemester
	}
	if r.FeeStructureOneShotDiscountPercent != nil {
		patch["fee_structure_one_shot_discount_percent"] = *r.FeeStructureOneShotDiscountPercent
	}
	if r.FeeStructureGSTPercent != nil {
		patch["fee_structure_gst_percent"] = *r.FeeStructureGSTPercent
	}
	if r.FeeStructureProgramFeeIncludesGST != nil {
		patch["fee_structure_program_fee_includes_gst"] = *r.FeeStructureProgramFeeIncludesGST
	}
	if r.FeeStructureEqualScholarshipDistribution != nil {
		patch["fee_structure_equal_scholarship_distribution"] = *r.FeeStructureEqualScholarshipDistribution
	}
	if r.FeeStructureSemesterMonths != nil {
		patch["fee_structure_semester_months"] = *r.FeeStructureSemesterMonths
	}
	if r.FeeStructureCustomDatesEnabled != nil {
		patch["fee_structure_custom_dates_enabled"] = *r.FeeStructureCustomDatesEnabled
	}
	if r.FeeStructureCustomDueDates != nil {
		patch["fee_structure_custom_due_dates"] = *r.FeeStructureCustomDueDates
	}
	return patch
}

/* ======================= RESPONSES ======================= */

type FeeStructureResponse struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id"`

	FeeStructureCohortID  uuid.UUID  `json:"fee_structure_cohort_id"`
	FeeStructureStudentID *uuid.UUID `json:"fee_structure_student_id,omitempty"`
	FeeStructureScope     string     `json:"fee_structure_scope"`

	FeeStructureTotalProgramFee decimal.Decimal `json:"fee_structure_total_program_fee"`
	FeeStructureAdmissionFee    decimal.Decimal `json:"fee_structure_admission_fee"`

	FeeStructureNumberOfSemesters       int16 `json:"fee_structure_number_of_semesters"`
	FeeStructureInstallmentsPerSemester int16 `json:"fee_structure_installments_per_semester"`

	FeeStructureOneShotDiscountPercent decimal.Decimal `json:"fee_structure_one_shot_discount_percent"`
	FeeStructureGSTPercent             decimal.Decimal `json:"fee_structure_gst_percent"`
	FeeStructureProgramFeeIncludesGST  bool            `json:"fee_structure_program_fee_includes_gst"`

	FeeStructureEqualScholarshipDistribution bool `json:"fee_structure_equal_scholarship_distribution"`

	FeeStructureSemesterMonths int16 `json:"fee_structure_semester_months"`

	FeeStructureCustomDatesEnabled bool           `json:"fee_structure_custom_dates_enabled"`
	FeeStructureCustomDueDates     datatypes.JSON `json:"fee_structure_custom_due_dates,omitempty"`

	FeeStructureCreatedAt time.Time `json:"fee_structure_created_at"`
}

func FromModel(m model.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:                           m.FeeStructureID,
		FeeStructureCohortID:                     m.FeeStructureCohortID,
		FeeStructureStudentID:                    m.FeeStructureStudentID,
		FeeStructureScope:                        string(m.FeeStructureScope),
		FeeStructureTotalProgramFee:              m.FeeStructureTotalProgramFee,
		FeeStructureAdmissionFee:                 m.FeeStructureAdmissionFee,
		FeeStructureNumberOfSemesters:            m.FeeStructureNumberOfSemesters,
		FeeStructureInstallmentsPerSemester:      m.FeeStructureInstallmentsPerSemester,
		FeeStructureOneShotDiscountPercent:       m.FeeStructureOneShotDiscountPercent,
		FeeStructureGSTPercent:                   m.FeeStructureGSTPercent,
		FeeStructureProgramFeeIncludesGST:        m.FeeStructureProgramFeeIncludesGST,
		FeeStructureEqualScholarshipDistribution: m.FeeStructureEqualScholarshipDistribution,
		FeeStructureSemesterMonths:               m.FeeStructureSemesterMonths,
		FeeStructureCustomDatesEnabled:           m.FeeStructureCustomDatesEnabled,
		FeeStructureCustomDueDates:               m.FeeStructureCustomDueDates,
		FeeStructureCreatedAt:                    m.FeeStructureCreatedAt,
	}
}

func FromModels(rows []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
