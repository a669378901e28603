package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CohortModel struct {
	CohortID uuid.UUID `gorm:"column:cohort_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cohort_id"`

	CohortInstituteID uuid.UUID `gorm:"column:cohort_institute_id;type:uuid;not null;index" json:"cohort_institute_id"`

	CohortCode string `gorm:"column:cohort_code;type:text;not null" json:"cohort_code"` // unique per institute (DB constraint)
	CohortName string `gorm:"column:cohort_name;type:text;not null" json:"cohort_name"`

	CohortProgramStart      time.Time `gorm:"column:cohort_program_start;type:date;not null" json:"cohort_program_start"`
	CohortProgramMonths     int16     `gorm:"column:cohort_program_months;type:smallint;not null" json:"cohort_program_months"`
	CohortNumberOfSemesters int16     `gorm:"column:cohort_number_of_semesters;type:smallint;not null" json:"cohort_number_of_semesters"`

	CohortCreatedAt time.Time      `gorm:"column:cohort_created_at;autoCreateTime" json:"cohort_created_at"`
	CohortUpdatedAt *time.Time     `gorm:"column:cohort_updated_at;autoUpdateTime" json:"cohort_updated_at,omitempty"`
	CohortDeletedAt gorm.DeletedAt `gorm:"column:cohort_deleted_at;index" json:"cohort_deleted_at,omitempty"`
}

func (CohortModel) TableName() string { return "cohorts" }
