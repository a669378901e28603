// Package feecalc is the fee schedule builder and payment status resolver.
// It is pure: no DB, no HTTP. Callers fetch the fee structure, scholarship
// and transactions, feed them in, and persist/render whatever comes out.
package feecalc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* ======================= PAYMENT PLAN ======================= */

type PaymentPlan string

const (
	PlanNotSelected     PaymentPlan = "not_selected"
	PlanOneShot         PaymentPlan = "one_shot"
	PlanSemesterWise    PaymentPlan = "semester_wise"
	PlanInstallmentWise PaymentPlan = "installment_wise"
)

func (p PaymentPlan) Valid() bool {
	switch p {
	case PlanNotSelected, PlanOneShot, PlanSemesterWise, PlanInstallmentWise:
		return true
	}
	return false
}

/* ======================= LINE KEY ======================= */

type LineKind string

const (
	LineAdmission   LineKind = "admission"
	LineOneShot     LineKind = "one_shot"
	LineInstallment LineKind = "installment"
)

// LineKey identifies one payment obligation. Semester/Installment are 1-based
// and only meaningful for LineInstallment.
type LineKey struct {
	Kind        LineKind `json:"kind"`
	Semester    int      `json:"semester,omitempty"`
	Installment int      `json:"installment,omitempty"`
}

func (k LineKey) String() string {
	if k.Kind == LineInstallment {
		return fmt.Sprintf("%s:%d:%d", k.Kind, k.Semester, k.Installment)
	}
	return string(k.Kind)
}

func AdmissionKey() LineKey { return LineKey{Kind: LineAdmission} }
func OneShotKey() LineKey   { return LineKey{Kind: LineOneShot} }
func InstallmentKey(semester, installment int) LineKey {
	return LineKey{Kind: LineInstallment, Semester: semester, Installment: installment}
}

/* ======================= INPUTS ======================= */

// FeeStructure is the cohort (or per-student custom) fee configuration.
type FeeStructure struct {
	TotalProgramFee decimal.Decimal
	AdmissionFee    decimal.Decimal

	NumberOfSemesters       int
	InstallmentsPerSemester int

	OneShotDiscountPercent decimal.Decimal // applied only on the one_shot plan
	GSTPercent             decimal.Decimal
	ProgramFeeIncludesGST  bool

	EqualScholarshipDistribution bool

	ProgramStart   time.Time
	SemesterMonths int // calendar length of one semester; 0 means the default of 6

	CustomDatesEnabled bool
	CustomDueDates     map[LineKey]time.Time
}

// Scholarship is a percentage award. The percentile band is configuration the
// caller already matched the student against; the builder only consumes the
// percentages.
type Scholarship struct {
	AmountPercent             decimal.Decimal
	AdditionalDiscountPercent decimal.Decimal
	PercentileStart           decimal.Decimal
	PercentileEnd             decimal.Decimal
}

/* ======================= SCHEDULE ======================= */

// ScheduleLine is one due payment with its amount breakdown.
// AmountPayable = BaseAmount + GSTAmount - DiscountAmount - ScholarshipAmount.
type ScheduleLine struct {
	Key     LineKey   `json:"key"`
	DueDate time.Time `json:"due_date"`

	BaseAmount        decimal.Decimal `json:"base_amount"`
	GSTAmount         decimal.Decimal `json:"gst_amount"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	ScholarshipAmount decimal.Decimal `json:"scholarship_amount"`
	AmountPayable     decimal.Decimal `json:"amount_payable"`

	// Waived is an administrative override set by the caller (not derived
	// from transactions) before status resolution.
	Waived bool `json:"waived,omitempty"`
}

type Schedule struct {
	Plan      PaymentPlan    `json:"plan"`
	Admission ScheduleLine   `json:"admission"`
	Lines     []ScheduleLine `json:"lines"`

	TotalPayable decimal.Decimal `json:"total_payable"` // admission + all lines
}

// Line returns the schedule line for key (admission included), or nil.
func (s *Schedule) Line(key LineKey) *ScheduleLine {
	if key.Kind == LineAdmission {
		return &s.Admission
	}
	for i := range s.Lines {
		if s.Lines[i].Key == key {
			return &s.Lines[i]
		}
	}
	return nil
}

/* ======================= TRANSACTIONS ======================= */

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Transaction is one recorded payment attempt against a schedule line.
// Only approved transactions count toward the paid amount.
type Transaction struct {
	ID           uuid.UUID
	Target       LineKey
	Amount       decimal.Decimal
	Method       string
	Verification VerificationStatus
	PaidAt       time.Time
}

/* ======================= RESOLVED STATUS ======================= */

type ResolvedStatus string

const (
	StatusPending                  ResolvedStatus = "pending"
	StatusPending10PlusDays        ResolvedStatus = "pending_10_plus_days"
	StatusVerificationPending      ResolvedStatus = "verification_pending"
	StatusPaid                     ResolvedStatus = "paid"
	StatusOverdue                  ResolvedStatus = "overdue"
	StatusPartiallyPaidDaysLeft    ResolvedStatus = "partially_paid_days_left"
	StatusPartiallyPaidOverdue     ResolvedStatus = "partially_paid_overdue"
	StatusPartiallyPaidVerPending  ResolvedStatus = "partially_paid_verification_pending"
	StatusWaived                   ResolvedStatus = "waived"
	StatusPartiallyWaived          ResolvedStatus = "partially_waived"
)

// Overdue reports whether the status belongs to the overdue family used for
// collections prioritization.
func (s ResolvedStatus) Overdue() bool {
	switch s {
	case StatusOverdue, StatusPending10PlusDays, StatusPartiallyPaidOverdue:
		return true
	}
	return false
}

// LineStatus is a schedule line annotated with its derived payment state.
type LineStatus struct {
	Line   ScheduleLine   `json:"line"`
	Status ResolvedStatus `json:"status"`

	PaidAmount          decimal.Decimal `json:"paid_amount"`
	AmountPending       decimal.Decimal `json:"amount_pending"`
	PendingVerification decimal.Decimal `json:"pending_verification_amount"`
	DaysOverdue         int             `json:"days_overdue,omitempty"`
}

type Summary struct {
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalOverdue decimal.Decimal `json:"total_overdue"`
}

type StatusReport struct {
	Admission LineStatus   `json:"admission"`
	Lines     []LineStatus `json:"lines"`
	Summary   Summary      `json:"summary"`
}
