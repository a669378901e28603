package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"campushq_backend/internals/features/finance/feecalc"
	feeModel "campushq_backend/internals/features/finance/feestructures/model"
)

func TestParseLineKey(t *testing.T) {
	k, err := parseLineKey("admission")
	require.NoError(t, err)
	assert.Equal(t, feecalc.AdmissionKey(), k)

	k, err = parseLineKey("one_shot")
	require.NoError(t, err)
	assert.Equal(t, feecalc.OneShotKey(), k)

	k, err = parseLineKey("installment:2:3")
	require.NoError(t, err)
	assert.Equal(t, feecalc.InstallmentKey(2, 3), k)

	for _, bad := range []string{"", "installment", "installment:0:1", "installment:1:0", "semester:1:1"} {
		_, err := parseLineKey(bad)
		assert.Errorf(t, err, "key %q", bad)
	}
}

func TestToEngineStructure(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	row := feeModel.FeeStructureModel{
		FeeStructureTotalProgramFee:         decimal.RequireFromString("120000"),
		FeeStructureAdmissionFee:            decimal.RequireFromString("25000"),
		FeeStructureNumberOfSemesters:       2,
		FeeStructureInstallmentsPerSemester: 3,
		FeeStructureGSTPercent:              decimal.RequireFromString("18"),
		FeeStructureSemesterMonths:          6,
		FeeStructureCustomDatesEnabled:      true,
		FeeStructureCustomDueDates: datatypes.JSON([]byte(
			`{"admission":"2026-07-01","installment:1:2":"2026-09-15"}`)),
	}

	fs, err := toEngineStructure(row, start)
	require.NoError(t, err)

	assert.True(t, fs.TotalProgramFee.Equal(decimal.RequireFromString("120000")))
	assert.Equal(t, 2, fs.NumberOfSemesters)
	assert.Equal(t, 3, fs.InstallmentsPerSemester)
	assert.Equal(t, start, fs.ProgramStart)

	require.Len(t, fs.CustomDueDates, 2)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), fs.CustomDueDates[feecalc.AdmissionKey()])
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), fs.CustomDueDates[feecalc.InstallmentKey(1, 2)])
}

func TestMarkWaivedLines(t *testing.T) {
	sched := &feecalc.Schedule{
		Admission: feecalc.ScheduleLine{Key: feecalc.AdmissionKey()},
		Lines: []feecalc.ScheduleLine{
			{Key: feecalc.InstallmentKey(1, 1)},
			{Key: feecalc.InstallmentKey(1, 2)},
		},
	}
	waivers := []feeModel.FeeWaiverModel{
		{FeeWaiverTargetKind: feeModel.WaiverTargetInstallment, FeeWaiverSemester: 1, FeeWaiverInstallment: 2},
		{FeeWaiverTargetKind: feeModel.WaiverTargetAdmission},
		// one_shot line does not exist on an installment schedule
		{FeeWaiverTargetKind: feeModel.WaiverTargetOneShot},
	}

	orphans := markWaivedLines(sched, waivers)

	assert.True(t, sched.Admission.Waived)
	assert.False(t, sched.Lines[0].Waived)
	assert.True(t, sched.Lines[1].Waived)

	require.Len(t, orphans, 1)
	assert.Equal(t, feeModel.WaiverTargetOneShot, orphans[0].FeeWaiverTargetKind)
}

func TestToEngineStructureRejectsMalformedDates(t *testing.T) {
	row := feeModel.FeeStructureModel{
		FeeStructureTotalProgramFee:         decimal.RequireFromString("120000"),
		FeeStructureNumberOfSemesters:       2,
		FeeStructureInstallmentsPerSemester: 1,
		FeeStructureCustomDatesEnabled:      true,
		FeeStructureCustomDueDates:          datatypes.JSON([]byte(`{"admission":"July 1"}`)),
	}
	_, err := toEngineStructure(row, time.Now())
	assert.Error(t, err)

	row.FeeStructureCustomDueDates = datatypes.JSON([]byte(`{"bogus:1":"2026-07-01"}`))
	_, err = toEngineStructure(row, time.Now())
	assert.Error(t, err)
}
