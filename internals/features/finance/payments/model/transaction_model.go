package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// TransactionModel is one recorded payment attempt against a fee schedule
// line. The target columns mirror the schedule line key: kind plus the
// 1-based semester/installment pair for installment lines.
type TransactionModel struct {
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaction_id"`

	TransactionInstituteID uuid.UUID `gorm:"column:transaction_institute_id;type:uuid;not null;index" json:"transaction_institute_id"`
	TransactionStudentID   uuid.UUID `gorm:"column:transaction_student_id;type:uuid;not null;index" json:"transaction_student_id"`

	TransactionTargetKind  string `gorm:"column:transaction_target_kind;type:text;not null" json:"transaction_target_kind"`
	TransactionSemester    int16  `gorm:"column:transaction_semester;type:smallint;not null;default:0" json:"transaction_semester"`
	TransactionInstallment int16  `gorm:"column:transaction_installment;type:smallint;not null;default:0" json:"transaction_installment"`

	TransactionAmount decimal.Decimal `gorm:"column:transaction_amount;type:numeric(12,2);not null" json:"transaction_amount"`
	TransactionMethod string          `gorm:"column:transaction_method;type:varchar(40);not null" json:"transaction_method"`
	TransactionRefNo  string          `gorm:"column:transaction_ref_no;type:varchar(80)" json:"transaction_ref_no,omitempty"`

	TransactionVerification VerificationStatus `gorm:"column:transaction_verification;type:text;not null;default:pending;index" json:"transaction_verification"`
	TransactionVerifiedBy   *uuid.UUID         `gorm:"column:transaction_verified_by;type:uuid" json:"transaction_verified_by,omitempty"`
	TransactionVerifiedAt   *time.Time         `gorm:"column:transaction_verified_at" json:"transaction_verified_at,omitempty"`
	TransactionRejectReason string             `gorm:"column:transaction_reject_reason;type:varchar(255)" json:"transaction_reject_reason,omitempty"`

	TransactionPaidAt time.Time `gorm:"column:transaction_paid_at;not null" json:"transaction_paid_at"`

	TransactionCreatedAt time.Time      `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt *time.Time     `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at,omitempty"`
	TransactionDeletedAt gorm.DeletedAt `gorm:"column:transaction_deleted_at;index" json:"transaction_deleted_at,omitempty"`
}

func (TransactionModel) TableName() string { return "transactions" }
