package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeWaiverTargetKind string

const (
	WaiverTargetAdmission   FeeWaiverTargetKind = "admission"
	WaiverTargetOneShot     FeeWaiverTargetKind = "one_shot"
	WaiverTargetInstallment FeeWaiverTargetKind = "installment"
)

// FeeWaiverModel marks a single schedule line of a single student as waived.
type FeeWaiverModel struct {
	FeeWaiverID uuid.UUID `gorm:"column:fee_waiver_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_waiver_id"`

	FeeWaiverInstituteID uuid.UUID `gorm:"column:fee_waiver_institute_id;type:uuid;not null;index" json:"fee_waiver_institute_id"`
	FeeWaiverStudentID   uuid.UUID `gorm:"column:fee_waiver_student_id;type:uuid;not null;index" json:"fee_waiver_student_id"`

	FeeWaiverTargetKind  FeeWaiverTargetKind `gorm:"column:fee_waiver_target_kind;type:text;not null" json:"fee_waiver_target_kind"`
	FeeWaiverSemester    int16               `gorm:"column:fee_waiver_semester;type:smallint;not null;default:0" json:"fee_waiver_semester"`
	FeeWaiverInstallment int16               `gorm:"column:fee_waiver_installment;type:smallint;not null;default:0" json:"fee_waiver_installment"`

	FeeWaiverReason    string     `gorm:"column:fee_waiver_reason;type:varchar(255)" json:"fee_waiver_reason,omitempty"`
	FeeWaiverGrantedBy *uuid.UUID `gorm:"column:fee_waiver_granted_by;type:uuid" json:"fee_waiver_granted_by,omitempty"`

	FeeWaiverCreatedAt time.Time      `gorm:"column:fee_waiver_created_at;autoCreateTime" json:"fee_waiver_created_at"`
	FeeWaiverDeletedAt gorm.DeletedAt `gorm:"column:fee_waiver_deleted_at;index" json:"fee_waiver_deleted_at,omitempty"`
}

func (FeeWaiverModel) TableName() string { return "fee_waivers" }
