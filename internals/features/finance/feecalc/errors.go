package feecalc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrPlanNotSelected is returned when a schedule is requested before the
// student has chosen a payment plan.
var ErrPlanNotSelected = errors.New("feecalc: payment plan not selected")

// InvalidFeeStructureError reports a malformed fee structure configuration.
type InvalidFeeStructureError struct {
	Reason string
}

func (e *InvalidFeeStructureError) Error() string {
	return "feecalc: invalid fee structure: " + e.Reason
}

func invalidStructure(format string, args ...any) error {
	return &InvalidFeeStructureError{Reason: fmt.Sprintf(format, args...)}
}

// InconsistentTargetError reports a transaction whose target matches no
// schedule line. Surfaced as a data-integrity failure, never silently dropped.
type InconsistentTargetError struct {
	TransactionID uuid.UUID
	Target        LineKey
}

func (e *InconsistentTargetError) Error() string {
	return fmt.Sprintf("feecalc: transaction %s targets unknown schedule line %s",
		e.TransactionID, e.Target)
}
