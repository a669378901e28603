package feecalc

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

func installmentSchedule(t *testing.T) *Schedule {
	t.Helper()
	sched, err := BuildSchedule(baseStructure(), PlanInstallmentWise, nil)
	require.NoError(t, err)
	return sched
}

func tx(target LineKey, amount string, v VerificationStatus) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Target:       target,
		Amount:       d(amount),
		Method:       "bank_transfer",
		Verification: v,
		PaidAt:       today,
	}
}

func lineStatus(t *testing.T, report *StatusReport, key LineKey) LineStatus {
	t.Helper()
	for _, ls := range report.Lines {
		if ls.Line.Key == key {
			return ls
		}
	}
	t.Fatalf("no line %s in report", key)
	return LineStatus{}
}

func TestResolveStatuses_SpecExamples(t *testing.T) {
	sched := installmentSchedule(t) // every line payable 23600, (1,1) due at program start

	txs := []Transaction{
		tx(InstallmentKey(1, 1), "23600", VerificationApproved),
		tx(InstallmentKey(1, 2), "10000", VerificationPending),
	}

	report, err := ResolveStatuses(sched, txs, today)
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, lineStatus(t, report, InstallmentKey(1, 1)).Status)
	// zero approved amount + a pending transaction => verification_pending
	assert.Equal(t, StatusVerificationPending, lineStatus(t, report, InstallmentKey(1, 2)).Status)

	// an approved partial on top of the pending one flips the bucket
	txs = append(txs, tx(InstallmentKey(1, 2), "5000", VerificationApproved))
	report, err = ResolveStatuses(sched, txs, today)
	require.NoError(t, err)
	ls := lineStatus(t, report, InstallmentKey(1, 2))
	assert.Equal(t, StatusPartiallyPaidVerPending, ls.Status)
	assert.True(t, ls.PaidAmount.Equal(d("5000")))
	assert.True(t, ls.PendingVerification.Equal(d("10000")))
}

func TestResolveStatuses_OverdueBuckets(t *testing.T) {
	sched := installmentSchedule(t)

	cases := []struct {
		name     string
		due      time.Time
		txs      []Transaction
		want     ResolvedStatus
		daysOver int
	}{
		{"unpaid 15 days past due", today.AddDate(0, 0, -15), nil, StatusPending10PlusDays, 15},
		{"unpaid 5 days past due", today.AddDate(0, 0, -5), nil, StatusOverdue, 5},
		{"unpaid due today", today, nil, StatusPending, 0},
		{"unpaid due in future", today.AddDate(0, 0, 30), nil, StatusPending, 0},
		{"partial past due", today.AddDate(0, 0, -3),
			[]Transaction{tx(InstallmentKey(1, 1), "1000", VerificationApproved)},
			StatusPartiallyPaidOverdue, 3},
		{"partial before due", today.AddDate(0, 0, 30),
			[]Transaction{tx(InstallmentKey(1, 1), "1000", VerificationApproved)},
			StatusPartiallyPaidDaysLeft, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sched.Lines[0].DueDate = tc.due
			report, err := ResolveStatuses(sched, tc.txs, today)
			require.NoError(t, err)
			ls := lineStatus(t, report, InstallmentKey(1, 1))
			assert.Equal(t, tc.want, ls.Status)
			assert.Equal(t, tc.daysOver, ls.DaysOverdue)
		})
	}
}

func TestResolveStatuses_Waived(t *testing.T) {
	sched := installmentSchedule(t)
	sched.Lines[0].Waived = true
	sched.Lines[1].Waived = true

	txs := []Transaction{
		tx(InstallmentKey(1, 2), "3000", VerificationApproved),
	}
	report, err := ResolveStatuses(sched, txs, today)
	require.NoError(t, err)

	assert.Equal(t, StatusWaived, lineStatus(t, report, InstallmentKey(1, 1)).Status)
	assert.Equal(t, StatusPartiallyWaived, lineStatus(t, report, InstallmentKey(1, 2)).Status)

	// waived lines contribute nothing to pending
	for _, key := range []LineKey{InstallmentKey(1, 1), InstallmentKey(1, 2)} {
		assert.True(t, lineStatus(t, report, key).AmountPending.IsZero())
	}
}

func TestResolveStatuses_AdmissionLine(t *testing.T) {
	sched := installmentSchedule(t) // admission payable 29500, due at program start (past)

	report, err := ResolveStatuses(sched, nil, today)
	require.NoError(t, err)
	assert.Equal(t, StatusPending10PlusDays, report.Admission.Status) // Jan 1 -> Feb 1 = 31 days

	report, err = ResolveStatuses(sched, []Transaction{
		tx(AdmissionKey(), "29500", VerificationApproved),
	}, today)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, report.Admission.Status)
}

func TestResolveStatuses_SemesterFallbackMatch(t *testing.T) {
	sched, err := BuildSchedule(baseStructure(), PlanSemesterWise, nil)
	require.NoError(t, err)

	// legacy transactions carry (semester, installment) keys even against a
	// semester-wise schedule; semester number alone decides
	report, err := ResolveStatuses(sched, []Transaction{
		tx(InstallmentKey(2, 3), "70800", VerificationApproved),
	}, today)
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, lineStatus(t, report, InstallmentKey(2, 1)).Status)
}

func TestResolveStatuses_InconsistentTarget(t *testing.T) {
	sched := installmentSchedule(t)

	bad := tx(InstallmentKey(9, 9), "100", VerificationApproved)
	_, err := ResolveStatuses(sched, []Transaction{bad}, today)

	var inconsistent *InconsistentTargetError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, bad.ID, inconsistent.TransactionID)
	assert.Equal(t, InstallmentKey(9, 9), inconsistent.Target)
}

func TestResolveStatuses_PaidIsTerminal(t *testing.T) {
	sched := installmentSchedule(t)
	sched.Lines[0].DueDate = today.AddDate(0, 0, -30) // long overdue
	sched.Lines[0].Waived = true                      // and waived

	base := []Transaction{
		tx(InstallmentKey(1, 1), "20000", VerificationApproved),
		tx(InstallmentKey(1, 1), "3600", VerificationApproved),
		tx(InstallmentKey(1, 1), "500", VerificationPending),
	}

	// once the approved amount covers the payable, no transaction ordering
	// (or stray pending transaction, or waive flag) produces anything but paid
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}
	for _, order := range orders {
		txs := make([]Transaction, 0, len(base))
		for _, i := range order {
			txs = append(txs, base[i])
		}
		report, err := ResolveStatuses(sched, txs, today)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, lineStatus(t, report, InstallmentKey(1, 1)).Status)
	}
}

func TestResolveStatuses_RejectedCountsNowhere(t *testing.T) {
	sched := installmentSchedule(t)
	sched.Lines[0].DueDate = today.AddDate(0, 0, 30)

	report, err := ResolveStatuses(sched, []Transaction{
		tx(InstallmentKey(1, 1), "23600", VerificationRejected),
	}, today)
	require.NoError(t, err)

	ls := lineStatus(t, report, InstallmentKey(1, 1))
	assert.Equal(t, StatusPending, ls.Status)
	assert.True(t, ls.PaidAmount.IsZero())
	assert.True(t, ls.PendingVerification.IsZero())
}

func TestResolveStatuses_Summary(t *testing.T) {
	sched := installmentSchedule(t)
	// make everything except line 0 comfortably in the future
	for i := range sched.Lines {
		sched.Lines[i].DueDate = today.AddDate(0, 0, 60)
	}
	sched.Lines[0].DueDate = today.AddDate(0, 0, -12)
	sched.Admission.DueDate = today.AddDate(0, 0, 60)
	sched.Lines[5].Waived = true

	report, err := ResolveStatuses(sched, []Transaction{
		tx(InstallmentKey(1, 2), "23600", VerificationApproved),
		tx(InstallmentKey(1, 3), "10000", VerificationApproved),
	}, today)
	require.NoError(t, err)

	assert.True(t, report.Summary.TotalPaid.Equal(d("33600")))
	// pending: admission 29500 + line0 23600 + line3 remainder 13600 + lines (2,1) (2,2) 23600 each
	assert.True(t, report.Summary.TotalPending.Equal(d("113900")),
		"total pending = %s", report.Summary.TotalPending)
	// overdue: only the 12-days-late line
	assert.True(t, report.Summary.TotalOverdue.Equal(d("23600")))
	assert.Equal(t, StatusPending10PlusDays, lineStatus(t, report, InstallmentKey(1, 1)).Status)
}
