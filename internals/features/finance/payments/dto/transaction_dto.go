package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campushq_backend/internals/features/finance/feecalc"
	model "campushq_backend/internals/features/finance/payments/model"
)

/* ======================= REQUESTS ======================= */

type RecordTransactionRequest struct {
	TransactionStudentID uuid.UUID `json:"transaction_student_id" validate:"required"`

	TransactionTargetKind  string `json:"transaction_target_kind" validate:"required,oneof=admission one_shot installment"`
	TransactionSemester    int16  `json:"transaction_semester" validate:"min=0,max=20"`
	TransactionInstallment int16  `json:"transaction_installment" validate:"min=0,max=12"`

	TransactionAmount decimal.Decimal `json:"transaction_amount" validate:"required"`
	TransactionMethod string          `json:"transaction_method" validate:"required,oneof=upi neft cheque cash card"`
	TransactionRefNo  string          `json:"transaction_ref_no" validate:"max=80"`

	TransactionPaidAt *time.Time `json:"transaction_paid_at"`
}

func (r RecordTransactionRequest) ToModel(instituteID uuid.UUID) *model.TransactionModel {
	paidAt := time.Now()
	if r.TransactionPaidAt != nil {
		paidAt = *r.TransactionPaidAt
	}
	return &model.TransactionModel{
		TransactionInstituteID:  instituteID,
		TransactionStudentID:    r.TransactionStudentID,
		TransactionTargetKind:   r.TransactionTargetKind,
		TransactionSemester:     r.TransactionSemester,
		TransactionInstallment:  r.TransactionInstallment,
		TransactionAmount:       r.TransactionAmount,
		TransactionMethod:       r.TransactionMethod,
		TransactionRefNo:        r.TransactionRefNo,
		TransactionVerification: model.VerificationPending,
		TransactionPaidAt:       paidAt,
	}
}

type VerifyTransactionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason" validate:"max=255"`
}

/* ======================= RESPONSES ======================= */

type TransactionResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`

	TransactionStudentID uuid.UUID `json:"transaction_student_id"`

	TransactionTargetKind  string `json:"transaction_target_kind"`
	TransactionSemester    int16  `json:"transaction_semester,omitempty"`
	TransactionInstallment int16  `json:"transaction_installment,omitempty"`

	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	TransactionMethod string          `json:"transaction_method"`
	TransactionRefNo  string          `json:"transaction_ref_no,omitempty"`

	TransactionVerification string     `json:"transaction_verification"`
	TransactionVerifiedAt   *time.Time `json:"transaction_verified_at,omitempty"`
	TransactionRejectReason string     `json:"transaction_reject_reason,omitempty"`

	TransactionPaidAt    time.Time `json:"transaction_paid_at"`
	TransactionCreatedAt time.Time `json:"transaction_created_at"`
}

func FromModel(m model.TransactionModel) TransactionResponse {
	return TransactionResponse{
		TransactionID:           m.TransactionID,
		TransactionStudentID:    m.TransactionStudentID,
		TransactionTargetKind:   m.TransactionTargetKind,
		TransactionSemester:     m.TransactionSemester,
		TransactionInstallment:  m.TransactionInstallment,
		TransactionAmount:       m.TransactionAmount,
		TransactionMethod:       m.TransactionMethod,
		TransactionRefNo:        m.TransactionRefNo,
		TransactionVerification: string(m.TransactionVerification),
		TransactionVerifiedAt:   m.TransactionVerifiedAt,
		TransactionRejectReason: m.TransactionRejectReason,
		TransactionPaidAt:       m.TransactionPaidAt,
		TransactionCreatedAt:    m.TransactionCreatedAt,
	}
}

func FromModels(rows []model.TransactionModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}

/* ======================= FEE SCHEDULE VIEW ======================= */

type FeeScheduleResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Plan      string    `json:"plan"`

	Schedule *feecalc.Schedule     `json:"schedule"`
	Report   *feecalc.StatusReport `json:"report"`
}

type CohortFeeSummaryRow struct {
	StudentID         uuid.UUID       `json:"student_id"`
	StudentRollNumber string          `json:"student_roll_number"`
	StudentFullName   string          `json:"student_full_name"`
	Plan              string          `json:"plan"`
	TotalPayable      decimal.Decimal `json:"total_payable"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalPending      decimal.Decimal `json:"total_pending"`
	TotalOverdue      decimal.Decimal `json:"total_overdue"`
	Error             string          `json:"error,omitempty"`
}

type CohortFeeSummaryResponse struct {
	CohortID uuid.UUID             `json:"cohort_id"`
	AsOf     time.Time             `json:"as_of"`
	Rows     []CohortFeeSummaryRow `json:"rows"`

	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalOverdue decimal.Decimal `json:"total_overdue"`
}
