package feecalc

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func baseStructure() FeeStructure {
	return FeeStructure{
		TotalProgramFee:         d("120000"),
		AdmissionFee:            d("25000"),
		NumberOfSemesters:       2,
		InstallmentsPerSemester: 3,
		GSTPercent:              d("18"),
		ProgramStart:            time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildSchedule_SemesterWise(t *testing.T) {
	sched, err := BuildSchedule(baseStructure(), PlanSemesterWise, nil)
	require.NoError(t, err)

	require.Len(t, sched.Lines, 2)
	for i, line := range sched.Lines {
		assert.True(t, line.BaseAmount.Equal(d("60000")), "line %d base = %s", i, line.BaseAmount)
		assert.True(t, line.GSTAmount.Equal(d("10800")), "line %d gst = %s", i, line.GSTAmount)
		assert.True(t, line.AmountPayable.Equal(d("70800")), "line %d payable = %s", i, line.AmountPayable)
		assert.Equal(t, InstallmentKey(i+1, 1), line.Key)
	}

	// admission fee is its own line with its own GST
	assert.True(t, sched.Admission.BaseAmount.Equal(d("25000")))
	assert.True(t, sched.Admission.GSTAmount.Equal(d("4500")))
	assert.True(t, sched.Admission.AmountPayable.Equal(d("29500")))

	assert.True(t, sched.TotalPayable.Equal(d("171100")))
}

func TestBuildSchedule_InstallmentWise(t *testing.T) {
	sched, err := BuildSchedule(baseStructure(), PlanInstallmentWise, nil)
	require.NoError(t, err)

	require.Len(t, sched.Lines, 6)
	for i, line := range sched.Lines {
		assert.True(t, line.BaseAmount.Equal(d("20000")), "line %d base = %s", i, line.BaseAmount)
		assert.True(t, line.GSTAmount.Equal(d("3600")), "line %d gst = %s", i, line.GSTAmount)
		assert.True(t, line.AmountPayable.Equal(d("23600")), "line %d payable = %s", i, line.AmountPayable)
	}
	assert.Equal(t, InstallmentKey(1, 1), sched.Lines[0].Key)
	assert.Equal(t, InstallmentKey(1, 3), sched.Lines[2].Key)
	assert.Equal(t, InstallmentKey(2, 1), sched.Lines[3].Key)
}

func TestBuildSchedule_OneShotDiscount(t *testing.T) {
	fs := baseStructure()
	fs.OneShotDiscountPercent = d("10")

	sched, err := BuildSchedule(fs, PlanOneShot, nil)
	require.NoError(t, err)

	require.Len(t, sched.Lines, 1)
	line := sched.Lines[0]
	assert.Equal(t, OneShotKey(), line.Key)
	assert.True(t, line.BaseAmount.Equal(d("120000")))
	assert.True(t, line.DiscountAmount.Equal(d("12000")))
	// GST on the post-discount base
	assert.True(t, line.GSTAmount.Equal(d("19440")))
	assert.True(t, line.AmountPayable.Equal(d("127440")))
}

func TestBuildSchedule_InclusiveGST(t *testing.T) {
	fs := baseStructure()
	fs.TotalProgramFee = d("118000")
	fs.AdmissionFee = d("11800")
	fs.ProgramFeeIncludesGST = true

	sched, err := BuildSchedule(fs, PlanOneShot, nil)
	require.NoError(t, err)

	line := sched.Lines[0]
	assert.True(t, line.BaseAmount.Equal(d("100000")), "base = %s", line.BaseAmount)
	assert.True(t, line.GSTAmount.Equal(d("18000")), "gst = %s", line.GSTAmount)
	// inclusive mode decomposes the share: base + gst == gross
	assert.True(t, line.BaseAmount.Add(line.GSTAmount).Equal(fs.TotalProgramFee))

	assert.True(t, sched.Admission.BaseAmount.Equal(d("10000")))
	assert.True(t, sched.Admission.GSTAmount.Equal(d("1800")))
	assert.True(t, sched.Admission.AmountPayable.Equal(d("11800")))
}

func TestBuildSchedule_RoundingRemainderGoesToLastLine(t *testing.T) {
	fs := baseStructure()
	fs.TotalProgramFee = d("100000")
	fs.NumberOfSemesters = 3
	fs.GSTPercent = decimal.Zero

	sched, err := BuildSchedule(fs, PlanSemesterWise, nil)
	require.NoError(t, err)

	require.Len(t, sched.Lines, 3)
	assert.True(t, sched.Lines[0].BaseAmount.Equal(d("33333.33")))
	assert.True(t, sched.Lines[1].BaseAmount.Equal(d("33333.33")))
	assert.True(t, sched.Lines[2].BaseAmount.Equal(d("33333.34")))

	sum := decimal.Zero
	for _, l := range sched.Lines {
		sum = sum.Add(l.BaseAmount)
	}
	assert.True(t, sum.Equal(fs.TotalProgramFee))
}

func TestBuildSchedule_ScholarshipPerLine(t *testing.T) {
	sch := &Scholarship{AmountPercent: d("10")}

	sched, err := BuildSchedule(baseStructure(), PlanInstallmentWise, sch)
	require.NoError(t, err)

	for i, line := range sched.Lines {
		assert.True(t, line.ScholarshipAmount.Equal(d("2000")), "line %d scholarship = %s", i, line.ScholarshipAmount)
		assert.True(t, line.AmountPayable.Equal(d("21600")), "line %d payable = %s", i, line.AmountPayable)
	}
	// scholarship never touches the admission fee
	assert.True(t, sched.Admission.ScholarshipAmount.IsZero())
}

func TestBuildSchedule_ScholarshipOnInclusiveGSTBase(t *testing.T) {
	fs := baseStructure()
	fs.ProgramFeeIncludesGST = true
	sch := &Scholarship{AmountPercent: d("10")}

	sched, err := BuildSchedule(fs, PlanInstallmentWise, sch)
	require.NoError(t, err)

	// gross share 20000 -> base 16949.15; the award is 10% of the backed-out
	// base, not of the GST-inclusive share
	for i, line := range sched.Lines {
		assert.True(t, line.BaseAmount.Equal(d("16949.15")), "line %d base = %s", i, line.BaseAmount)
		assert.True(t, line.ScholarshipAmount.Equal(d("1694.92")), "line %d scholarship = %s", i, line.ScholarshipAmount)
		assert.True(t, line.AmountPayable.Equal(d("18305.08")), "line %d payable = %s", i, line.AmountPayable)
	}
}

func TestBuildSchedule_ScholarshipEqualDistribution(t *testing.T) {
	fs := baseStructure()
	fs.TotalProgramFee = d("100000")
	fs.NumberOfSemesters = 3
	fs.GSTPercent = decimal.Zero
	fs.EqualScholarshipDistribution = true
	sch := &Scholarship{AmountPercent: d("10")}

	sched, err := BuildSchedule(fs, PlanSemesterWise, sch)
	require.NoError(t, err)

	require.Len(t, sched.Lines, 3)
	assert.True(t, sched.Lines[0].ScholarshipAmount.Equal(d("3333.33")))
	assert.True(t, sched.Lines[1].ScholarshipAmount.Equal(d("3333.33")))
	assert.True(t, sched.Lines[2].ScholarshipAmount.Equal(d("3333.34")))

	total := decimal.Zero
	for _, l := range sched.Lines {
		total = total.Add(l.ScholarshipAmount)
	}
	assert.True(t, total.Equal(d("10000")))
}

func TestBuildSchedule_AmountIdentityHolds(t *testing.T) {
	cases := []struct {
		name string
		fs   FeeStructure
		plan PaymentPlan
		sch  *Scholarship
	}{
		{"installment gst", baseStructure(), PlanInstallmentWise, nil},
		{"one shot discount scholarship", func() FeeStructure {
			fs := baseStructure()
			fs.OneShotDiscountPercent = d("7.5")
			return fs
		}(), PlanOneShot, &Scholarship{AmountPercent: d("12.5"), AdditionalDiscountPercent: d("2")}},
		{"inclusive odd amounts", func() FeeStructure {
			fs := baseStructure()
			fs.TotalProgramFee = d("99999.99")
			fs.NumberOfSemesters = 4
			fs.InstallmentsPerSemester = 3
			fs.ProgramFeeIncludesGST = true
			return fs
		}(), PlanInstallmentWise, &Scholarship{AmountPercent: d("25")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sched, err := BuildSchedule(tc.fs, tc.plan, tc.sch)
			require.NoError(t, err)

			sumBase := decimal.Zero
			for _, l := range append([]ScheduleLine{sched.Admission}, sched.Lines...) {
				want := l.BaseAmount.Add(l.GSTAmount).Sub(l.DiscountAmount).Sub(l.ScholarshipAmount)
				assert.True(t, l.AmountPayable.Equal(want),
					"%s: payable %s != identity %s", l.Key, l.AmountPayable, want)
			}
			for _, l := range sched.Lines {
				if tc.fs.ProgramFeeIncludesGST {
					sumBase = sumBase.Add(l.BaseAmount).Add(l.GSTAmount)
				} else {
					sumBase = sumBase.Add(l.BaseAmount)
				}
			}
			assert.True(t, sumBase.Equal(tc.fs.TotalProgramFee),
				"line bases sum to %s, want %s", sumBase, tc.fs.TotalProgramFee)
		})
	}
}

func TestBuildSchedule_Idempotent(t *testing.T) {
	sch := &Scholarship{AmountPercent: d("10"), AdditionalDiscountPercent: d("5")}
	a, err := BuildSchedule(baseStructure(), PlanInstallmentWise, sch)
	require.NoError(t, err)
	b, err := BuildSchedule(baseStructure(), PlanInstallmentWise, sch)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildSchedule_DueDates(t *testing.T) {
	fs := baseStructure()
	fs.SemesterMonths = 6

	sched, err := BuildSchedule(fs, PlanInstallmentWise, nil)
	require.NoError(t, err)

	assert.Equal(t, fs.ProgramStart, sched.Admission.DueDate)
	// first installment of each semester lands on the semester start
	assert.Equal(t, fs.ProgramStart, sched.Lines[0].DueDate)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), sched.Lines[3].DueDate)
	// later installments are evenly spaced and strictly increasing
	for i := 1; i < 3; i++ {
		assert.True(t, sched.Lines[i].DueDate.After(sched.Lines[i-1].DueDate))
	}
}

func TestBuildSchedule_CustomDueDates(t *testing.T) {
	fs := baseStructure()
	custom := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	fs.CustomDatesEnabled = true
	fs.CustomDueDates = map[LineKey]time.Time{
		InstallmentKey(1, 2): custom,
	}

	sched, err := BuildSchedule(fs, PlanInstallmentWise, nil)
	require.NoError(t, err)

	assert.Equal(t, custom, sched.Lines[1].DueDate)
	// lines without a custom date keep the calendar default
	assert.Equal(t, fs.ProgramStart, sched.Lines[0].DueDate)
}

func TestBuildSchedule_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FeeStructure)
		plan   PaymentPlan
	}{
		{"zero semesters", func(fs *FeeStructure) { fs.NumberOfSemesters = 0 }, PlanSemesterWise},
		{"zero installments", func(fs *FeeStructure) { fs.InstallmentsPerSemester = 0 }, PlanInstallmentWise},
		{"negative program fee", func(fs *FeeStructure) { fs.TotalProgramFee = d("-1") }, PlanOneShot},
		{"negative admission fee", func(fs *FeeStructure) { fs.AdmissionFee = d("-1") }, PlanOneShot},
		{"discount above 100", func(fs *FeeStructure) { fs.OneShotDiscountPercent = d("101") }, PlanOneShot},
		{"negative gst", func(fs *FeeStructure) { fs.GSTPercent = d("-2") }, PlanOneShot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := baseStructure()
			tc.mutate(&fs)
			_, err := BuildSchedule(fs, tc.plan, nil)
			var invalid *InvalidFeeStructureError
			assert.ErrorAs(t, err, &invalid)
		})
	}

	t.Run("plan not selected", func(t *testing.T) {
		_, err := BuildSchedule(baseStructure(), PlanNotSelected, nil)
		assert.ErrorIs(t, err, ErrPlanNotSelected)
	})

	t.Run("scholarship percent above 100", func(t *testing.T) {
		_, err := BuildSchedule(baseStructure(), PlanSemesterWise, &Scholarship{AmountPercent: d("120")})
		var invalid *InvalidFeeStructureError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := BuildSchedule(baseStructure(), PaymentPlan("weekly"), nil)
		var invalid *InvalidFeeStructureError
		assert.ErrorAs(t, err, &invalid)
		assert.False(t, errors.Is(err, ErrPlanNotSelected))
	})
}
