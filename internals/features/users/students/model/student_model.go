package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentInstituteID uuid.UUID `gorm:"column:student_institute_id;type:uuid;not null;uniqueIndex:uq_student_roll_per_institute,priority:1" json:"student_institute_id"`
	StudentCohortID    uuid.UUID `gorm:"column:student_cohort_id;type:uuid;not null;index" json:"student_cohort_id"`

	StudentRollNumber string `gorm:"column:student_roll_number;type:varchar(40);not null;uniqueIndex:uq_student_roll_per_institute,priority:2" json:"student_roll_number"`
	StudentFullName   string `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`
	StudentEmail      string `gorm:"column:student_email;type:varchar(120)" json:"student_email,omitempty"`
	StudentPhone      string `gorm:"column:student_phone;type:varchar(20)" json:"student_phone,omitempty"`

	// Entrance percentile, used to shortlist scholarship candidates.
	StudentEntrancePercentile *decimal.Decimal `gorm:"column:student_entrance_percentile;type:numeric(5,2)" json:"student_entrance_percentile,omitempty"`

	StudentPaymentPlan  string     `gorm:"column:student_payment_plan;type:text;not null;default:not_selected" json:"student_payment_plan"`
	StudentPlanLockedAt *time.Time `gorm:"column:student_plan_locked_at" json:"student_plan_locked_at,omitempty"`

	StudentIsActive bool `gorm:"column:student_is_active;not null;default:true" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
