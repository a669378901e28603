package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ScholarshipModel struct {
	ScholarshipID uuid.UUID `gorm:"column:scholarship_id;type:uuid;default:gen_random_uuid();primaryKey" json:"scholarship_id"`

	ScholarshipInstituteID uuid.UUID `gorm:"column:scholarship_institute_id;type:uuid;not null;index" json:"scholarship_institute_id"`

	ScholarshipName    string          `gorm:"column:scholarship_name;type:varchar(120);not null" json:"scholarship_name"`
	ScholarshipPercent decimal.Decimal `gorm:"column:scholarship_percent;type:numeric(5,2);not null" json:"scholarship_percent"`

	ScholarshipAdditionalDiscountPercent decimal.Decimal `gorm:"column:scholarship_additional_discount_percent;type:numeric(5,2);not null;default:0" json:"scholarship_additional_discount_percent"`

	ScholarshipIsActive bool `gorm:"column:scholarship_is_active;not null;default:true" json:"scholarship_is_active"`

	ScholarshipCreatedAt time.Time      `gorm:"column:scholarship_created_at;autoCreateTime" json:"scholarship_created_at"`
	ScholarshipUpdatedAt *time.Time     `gorm:"column:scholarship_updated_at;autoUpdateTime" json:"scholarship_updated_at,omitempty"`
	ScholarshipDeletedAt gorm.DeletedAt `gorm:"column:scholarship_deleted_at;index" json:"scholarship_deleted_at,omitempty"`
}

func (ScholarshipModel) TableName() string { return "scholarships" }

// StudentScholarshipModel links one scholarship to one student. A student holds
// at most one active award at a time; enforcement lives in the controller.
type StudentScholarshipModel struct {
	StudentScholarshipID uuid.UUID `gorm:"column:student_scholarship_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_scholarship_id"`

	StudentScholarshipInstituteID   uuid.UUID `gorm:"column:student_scholarship_institute_id;type:uuid;not null;index" json:"student_scholarship_institute_id"`
	StudentScholarshipStudentID     uuid.UUID `gorm:"column:student_scholarship_student_id;type:uuid;not null;uniqueIndex:uq_student_scholarship_active,where:student_scholarship_deleted_at IS NULL" json:"student_scholarship_student_id"`
	StudentScholarshipScholarshipID uuid.UUID `gorm:"column:student_scholarship_scholarship_id;type:uuid;not null;index" json:"student_scholarship_scholarship_id"`

	StudentScholarshipGrantedBy *uuid.UUID `gorm:"column:student_scholarship_granted_by;type:uuid" json:"student_scholarship_granted_by,omitempty"`

	StudentScholarshipCreatedAt time.Time      `gorm:"column:student_scholarship_created_at;autoCreateTime" json:"student_scholarship_created_at"`
	StudentScholarshipDeletedAt gorm.DeletedAt `gorm:"column:student_scholarship_deleted_at;index" json:"student_scholarship_deleted_at,omitempty"`

	Scholarship *ScholarshipModel `gorm:"foreignKey:StudentScholarshipScholarshipID;references:ScholarshipID" json:"scholarship,omitempty"`
}

func (StudentScholarshipModel) TableName() string { return "student_scholarships" }
