package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EpicModel is one curriculum unit inside a cohort.
type EpicModel struct {
	EpicID uuid.UUID `gorm:"column:epic_id;type:uuid;default:gen_random_uuid();primaryKey" json:"epic_id"`

	EpicInstituteID uuid.UUID `gorm:"column:epic_institute_id;type:uuid;not null;index" json:"epic_institute_id"`
	EpicCohortID    uuid.UUID `gorm:"column:epic_cohort_id;type:uuid;not null;index" json:"epic_cohort_id"`

	EpicTitle    string     `gorm:"column:epic_title;type:text;not null" json:"epic_title"`
	EpicPosition int16      `gorm:"column:epic_position;type:smallint;not null" json:"epic_position"` // order within the cohort
	EpicStart    *time.Time `gorm:"column:epic_start;type:date" json:"epic_start,omitempty"`
	EpicEnd      *time.Time `gorm:"column:epic_end;type:date" json:"epic_end,omitempty"`

	EpicCreatedAt time.Time      `gorm:"column:epic_created_at;autoCreateTime" json:"epic_created_at"`
	EpicUpdatedAt *time.Time     `gorm:"column:epic_updated_at;autoUpdateTime" json:"epic_updated_at,omitempty"`
	EpicDeletedAt gorm.DeletedAt `gorm:"column:epic_deleted_at;index" json:"epic_deleted_at,omitempty"`
}

func (EpicModel) TableName() string { return "epics" }
