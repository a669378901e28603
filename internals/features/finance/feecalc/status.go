package feecalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// overdueEscalationDays is the age at which an unpaid overdue line moves into
// the pending_10_plus_days bucket used for collections prioritization.
const overdueEscalationDays = 10

/* ======================= RESOLVE STATUSES ======================= */

// ResolveStatuses derives the current payment status of every schedule line
// (admission included) from the recorded transactions, and aggregates the
// paid/pending/overdue totals. Only approved transactions count toward the
// paid amount; pending-verification ones are tracked separately. today is the
// single clock input, used for overdue classification.
//
// A transaction whose target matches no line is a data-integrity failure and
// is surfaced as *InconsistentTargetError, never dropped.
func ResolveStatuses(sched *Schedule, txs []Transaction, today time.Time) (*StatusReport, error) {
	type agg struct {
		paid       decimal.Decimal
		pendingVer decimal.Decimal
		hasPending bool
	}
	aggs := make(map[LineKey]*agg, len(sched.Lines)+1)
	aggs[sched.Admission.Key] = &agg{}
	for _, l := range sched.Lines {
		aggs[l.Key] = &agg{}
	}

	for _, tx := range txs {
		key, ok := matchTarget(sched, tx.Target)
		if !ok {
			return nil, &InconsistentTargetError{TransactionID: tx.ID, Target: tx.Target}
		}
		a := aggs[key]
		switch tx.Verification {
		case VerificationApproved:
			a.paid = a.paid.Add(tx.Amount)
		case VerificationPending:
			a.hasPending = true
			a.pendingVer = a.pendingVer.Add(tx.Amount)
		}
		// rejected transactions count toward nothing
	}

	report := &StatusReport{}
	annotate := func(line ScheduleLine) LineStatus {
		a := aggs[line.Key]
		ls := LineStatus{
			Line:                line,
			PaidAmount:          a.paid,
			PendingVerification: a.pendingVer,
		}
		ls.Status, ls.DaysOverdue = classify(line, a.paid, a.hasPending, today)

		if ls.Status != StatusPaid && ls.Status != StatusWaived && ls.Status != StatusPartiallyWaived {
			if rem := line.AmountPayable.Sub(a.paid); rem.IsPositive() {
				ls.AmountPending = rem
			}
		}

		report.Summary.TotalPaid = report.Summary.TotalPaid.Add(a.paid)
		report.Summary.TotalPending = report.Summary.TotalPending.Add(ls.AmountPending)
		if ls.Status.Overdue() {
			report.Summary.TotalOverdue = report.Summary.TotalOverdue.Add(ls.AmountPending)
		}
		return ls
	}

	report.Admission = annotate(sched.Admission)
	for _, l := range sched.Lines {
		report.Lines = append(report.Lines, annotate(l))
	}
	return report, nil
}

// matchTarget finds the schedule line a transaction belongs to. Exact key
// match first; for installment targets against a semester-wise schedule
// (single line per semester) the semester number alone decides.
func matchTarget(sched *Schedule, target LineKey) (LineKey, bool) {
	if sched.Line(target) != nil {
		return target, true
	}
	if target.Kind != LineInstallment {
		return LineKey{}, false
	}
	var found *ScheduleLine
	for i := range sched.Lines {
		if sched.Lines[i].Key.Semester == target.Semester {
			if found != nil {
				return LineKey{}, false // ambiguous, require an exact key
			}
			found = &sched.Lines[i]
		}
	}
	if found == nil {
		return LineKey{}, false
	}
	return found.Key, true
}

func classify(line ScheduleLine, paid decimal.Decimal, hasPending bool, today time.Time) (ResolvedStatus, int) {
	payable := line.AmountPayable

	// A fully covered line stays paid no matter what else is going on.
	if paid.GreaterThanOrEqual(payable) {
		return StatusPaid, 0
	}

	if line.Waived {
		if paid.IsPositive() {
			return StatusPartiallyWaived, 0
		}
		return StatusWaived, 0
	}

	if hasPending {
		if paid.IsPositive() {
			return StatusPartiallyPaidVerPending, 0
		}
		return StatusVerificationPending, 0
	}

	daysOver := daysBetween(line.DueDate, today)
	overdue := daysOver > 0

	if paid.IsPositive() {
		if overdue {
			return StatusPartiallyPaidOverdue, daysOver
		}
		return StatusPartiallyPaidDaysLeft, 0
	}

	if overdue {
		if daysOver >= overdueEscalationDays {
			return StatusPending10PlusDays, daysOver
		}
		return StatusOverdue, daysOver
	}
	return StatusPending, 0
}

// daysBetween returns how many whole calendar days `to` is past `from`
// (negative when `from` is still in the future). Clock components are
// ignored: a line is not overdue on its due date.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
