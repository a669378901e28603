package feecalc

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

const defaultSemesterMonths = 6

/* ======================= BUILD SCHEDULE ======================= */

// BuildSchedule turns a fee structure plus the student's chosen plan into the
// full payment schedule. Pure: identical inputs always yield an identical
// schedule. scholarship may be nil.
//
// Amount ordering is a business rule and must not be reordered:
// base -> discount -> GST -> scholarship -> payable. GST is charged on the
// post-discount base; the scholarship reduces what the student pays, not the
// taxable amount.
func BuildSchedule(fs FeeStructure, plan PaymentPlan, scholarship *Scholarship) (*Schedule, error) {
	if err := validateStructure(fs); err != nil {
		return nil, err
	}
	if plan == PlanNotSelected {
		return nil, ErrPlanNotSelected
	}
	if !plan.Valid() {
		return nil, invalidStructure("unknown payment plan %q", plan)
	}
	if err := validateScholarship(scholarship); err != nil {
		return nil, err
	}

	sched := &Schedule{Plan: plan}
	sched.Admission = buildAdmissionLine(fs)

	discountPct := decimal.Zero
	if plan == PlanOneShot {
		discountPct = fs.OneShotDiscountPercent
	}
	if scholarship != nil {
		discountPct = discountPct.Add(scholarship.AdditionalDiscountPercent)
	}

	var shares []decimal.Decimal
	var keys []LineKey
	switch plan {
	case PlanOneShot:
		shares = []decimal.Decimal{fs.TotalProgramFee}
		keys = []LineKey{OneShotKey()}
	case PlanSemesterWise:
		shares = splitEven(fs.TotalProgramFee, fs.NumberOfSemesters)
		for s := 1; s <= fs.NumberOfSemesters; s++ {
			keys = append(keys, InstallmentKey(s, 1))
		}
	case PlanInstallmentWise:
		for s, semShare := range splitEven(fs.TotalProgramFee, fs.NumberOfSemesters) {
			shares = append(shares, splitEven(semShare, fs.InstallmentsPerSemester)...)
			for i := 1; i <= fs.InstallmentsPerSemester; i++ {
				keys = append(keys, InstallmentKey(s+1, i))
			}
		}
	}

	// The scholarship percent applies to the taxed base, so in inclusive-GST
	// mode the backed-out base is used rather than the gross share.
	baseShares := make([]decimal.Decimal, len(shares))
	for i, share := range shares {
		baseShares[i], _ = taxSplit(fs, share, discountPct)
	}
	scholarshipShares := scholarshipSplit(fs, scholarship, baseShares)

	for i, share := range shares {
		line := buildLine(fs, keys[i], share, discountPct, scholarshipShares[i])
		line.DueDate = dueDate(fs, plan, keys[i])
		sched.Lines = append(sched.Lines, line)
	}

	sched.TotalPayable = sched.Admission.AmountPayable
	for _, l := range sched.Lines {
		sched.TotalPayable = sched.TotalPayable.Add(l.AmountPayable)
	}
	return sched, nil
}

func validateStructure(fs FeeStructure) error {
	if fs.NumberOfSemesters < 1 {
		return invalidStructure("number_of_semesters must be >= 1, got %d", fs.NumberOfSemesters)
	}
	if fs.InstallmentsPerSemester < 1 {
		return invalidStructure("installments_per_semester must be >= 1, got %d", fs.InstallmentsPerSemester)
	}
	if fs.TotalProgramFee.IsNegative() {
		return invalidStructure("total_program_fee must be >= 0")
	}
	if fs.AdmissionFee.IsNegative() {
		return invalidStructure("admission_fee must be >= 0")
	}
	if !percentInRange(fs.OneShotDiscountPercent) {
		return invalidStructure("one_shot_discount_percent out of [0,100]")
	}
	if !percentInRange(fs.GSTPercent) {
		return invalidStructure("gst_percent out of [0,100]")
	}
	return nil
}

func validateScholarship(s *Scholarship) error {
	if s == nil {
		return nil
	}
	if !percentInRange(s.AmountPercent) {
		return invalidStructure("scholarship amount_percent out of [0,100]")
	}
	if !percentInRange(s.AdditionalDiscountPercent) {
		return invalidStructure("scholarship additional_discount_percent out of [0,100]")
	}
	return nil
}

func percentInRange(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

/* ======================= LINE ASSEMBLY ======================= */

// buildAdmissionLine: the admission fee is a single line due immediately, with
// no discount or scholarship against it. GST is added on top unless the fee
// is configured as GST-inclusive, in which case GST is backed out of the
// gross amount instead.
func buildAdmissionLine(fs FeeStructure) ScheduleLine {
	base, gst := taxSplit(fs, fs.AdmissionFee, decimal.Zero)
	return ScheduleLine{
		Key:           AdmissionKey(),
		DueDate:       dueDate(fs, "", AdmissionKey()),
		BaseAmount:    base,
		GSTAmount:     gst,
		AmountPayable: base.Add(gst),
	}
}

func buildLine(fs FeeStructure, key LineKey, grossShare, discountPct, scholarshipShare decimal.Decimal) ScheduleLine {
	base, gst := taxSplit(fs, grossShare, discountPct)
	discount := percentOf(base, discountPct)
	payable := base.Add(gst).Sub(discount).Sub(scholarshipShare)
	return ScheduleLine{
		Key:               key,
		BaseAmount:        base,
		GSTAmount:         gst,
		DiscountAmount:    discount,
		ScholarshipAmount: scholarshipShare,
		AmountPayable:     payable,
	}
}

// taxSplit returns (base, gst) for a gross share. Exclusive mode keeps the
// share as the base and charges GST on the post-discount base. Inclusive mode
// decomposes the share so that base + gst == share.
func taxSplit(fs FeeStructure, gross, discountPct decimal.Decimal) (base, gst decimal.Decimal) {
	if fs.GSTPercent.IsZero() {
		return gross, decimal.Zero
	}
	if fs.ProgramFeeIncludesGST {
		base = gross.Mul(hundred).Div(hundred.Add(fs.GSTPercent)).Round(2)
		return base, gross.Sub(base)
	}
	taxable := gross.Sub(percentOf(gross, discountPct))
	return gross, percentOf(taxable, fs.GSTPercent)
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(2)
}

// splitEven splits total into n paise-exact shares. The final share absorbs
// the rounding remainder so the shares always sum back to total.
func splitEven(total decimal.Decimal, n int) []decimal.Decimal {
	per := total.Div(decimal.NewFromInt(int64(n))).Round(2)
	shares := make([]decimal.Decimal, n)
	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = per
		running = running.Add(per)
	}
	shares[n-1] = total.Sub(running)
	return shares
}

// scholarshipSplit computes the per-line scholarship deduction over the base
// (pre-GST) shares. With equal distribution the total award is spread evenly
// across lines (last line absorbs the remainder); otherwise each line carries
// its own percentage of its base share.
func scholarshipSplit(fs FeeStructure, s *Scholarship, baseShares []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(baseShares))
	if s == nil || s.AmountPercent.IsZero() {
		return out
	}
	if fs.EqualScholarshipDistribution {
		totalBase := decimal.Zero
		for _, b := range baseShares {
			totalBase = totalBase.Add(b)
		}
		return splitEven(percentOf(totalBase, s.AmountPercent), len(baseShares))
	}
	for i, base := range baseShares {
		out[i] = percentOf(base, s.AmountPercent)
	}
	return out
}

/* ======================= DUE DATES ======================= */

func dueDate(fs FeeStructure, plan PaymentPlan, key LineKey) time.Time {
	if fs.CustomDatesEnabled {
		if d, ok := fs.CustomDueDates[key]; ok {
			return d
		}
	}
	switch key.Kind {
	case LineAdmission, LineOneShot:
		return fs.ProgramStart
	}
	semStart := semesterStart(fs, key.Semester)
	if plan == PlanSemesterWise || fs.InstallmentsPerSemester <= 1 {
		return semStart
	}
	// installments evenly spaced within the semester
	semEnd := semesterStart(fs, key.Semester+1)
	spacingDays := int(semEnd.Sub(semStart).Hours()/24) / fs.InstallmentsPerSemester
	return semStart.AddDate(0, 0, (key.Installment-1)*spacingDays)
}

func semesterStart(fs FeeStructure, semester int) time.Time {
	months := fs.SemesterMonths
	if months <= 0 {
		months = defaultSemesterMonths
	}
	return fs.ProgramStart.AddDate(0, (semester-1)*months, 0)
}
