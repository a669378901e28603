package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FeeStructureScope string

const (
	// ScopeCohort: the default structure for every student of the cohort.
	ScopeCohort FeeStructureScope = "cohort"
	// ScopeCustom: a per-student override; takes precedence over the cohort one.
	ScopeCustom FeeStructureScope = "custom"
)

type FeeStructureModel struct {
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`

	FeeStructureInstituteID uuid.UUID         `gorm:"column:fee_structure_institute_id;type:uuid;not null;index" json:"fee_structure_institute_id"`
	FeeStructureCohortID    uuid.UUID         `gorm:"column:fee_structure_cohort_id;type:uuid;not null;index" json:"fee_structure_cohort_id"`
	FeeStructureStudentID   *uuid.UUID        `gorm:"column:fee_structure_student_id;type:uuid;index" json:"fee_structure_student_id,omitempty"` // set only for custom scope
	FeeStructureScope       FeeStructureScope `gorm:"column:fee_structure_scope;type:text;not null;default:cohort" json:"fee_structure_scope"`

	FeeStructureTotalProgramFee decimal.Decimal `gorm:"column:fee_structure_total_program_fee;type:numeric(12,2);not null" json:"fee_structure_total_program_fee"`
	FeeStructureAdmissionFee    decimal.Decimal `gorm:"column:fee_structure_admission_fee;type:numeric(12,2);not null;default:0" json:"fee_structure_admission_fee"`

	FeeStructureNumberOfSemesters       int16 `gorm:"column:fee_structure_number_of_semesters;type:smallint;not null" json:"fee_structure_number_of_semesters"`
	FeeStructureInstallmentsPerSemester int16 `gorm:"column:fee_structure_installments_per_semester;type:smallint;not null;default:1" json:"fee_structure_installments_per_semester"`

	FeeStructureOneShotDiscountPercent decimal.Decimal `gorm:"column:fee_structure_one_shot_discount_percent;type:numeric(5,2);not null;default:0" json:"fee_structure_one_shot_discount_percent"`
	FeeStructureGSTPercent             decimal.Decimal `gorm:"column:fee_structure_gst_percent;type:numeric(5,2);not null;default:18" json:"fee_structure_gst_percent"`
	FeeStructureProgramFeeIncludesGST  bool            `gorm:"column:fee_structure_program_fee_includes_gst;not null;default:false" json:"fee_structure_program_fee_includes_gst"`

	FeeStructureEqualScholarshipDistribution bool `gorm:"column:fee_structure_equal_scholarship_distribution;not null;default:false" json:"fee_structure_equal_scholarship_distribution"`

	FeeStructureSemesterMonths int16 `gorm:"column:fee_structure_semester_months;type:smallint;not null;default:6" json:"fee_structure_semester_months"`

	// CustomDueDates: {"installment:1:2": "2026-03-15", "admission": "2026-01-01", ...}
	FeeStructureCustomDatesEnabled bool           `gorm:"column:fee_structure_custom_dates_enabled;not null;default:false" json:"fee_structure_custom_dates_enabled"`
	FeeStructureCustomDueDates     datatypes.JSON `gorm:"column:fee_structure_custom_due_dates;type:jsonb" json:"fee_structure_custom_due_dates,omitempty"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt *time.Time     `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at,omitempty"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"fee_structure_deleted_at,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }
