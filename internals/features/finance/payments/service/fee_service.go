package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cohortModel "campushq_backend/internals/features/academics/cohorts/model"
	"campushq_backend/internals/features/finance/feecalc"
	feeModel "campushq_backend/internals/features/finance/feestructures/model"
	txModel "campushq_backend/internals/features/finance/payments/model"
	studentModel "campushq_backend/internals/features/users/students/model"
)

// FeeService assembles engine inputs from stored rows. The schedule builder
// and status resolver themselves live in feecalc and never touch the DB.
type FeeService struct {
	DB *gorm.DB
}

func NewFeeService(db *gorm.DB) *FeeService {
	return &FeeService{DB: db}
}

// StudentFeeState is everything the fee endpoints render for one student.
type StudentFeeState struct {
	Student  studentModel.StudentModel
	Plan     feecalc.PaymentPlan
	Schedule *feecalc.Schedule
	Report   *feecalc.StatusReport
}

// Resolve builds the schedule and status report for one student as of today.
func (s *FeeService) Resolve(instituteID, studentID uuid.UUID, today time.Time) (*StudentFeeState, error) {
	var student studentModel.StudentModel
	if err := s.DB.
		Where("student_id = ? AND student_institute_id = ?", studentID, instituteID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}

	plan := feecalc.PaymentPlan(student.StudentPaymentPlan)
	if plan == feecalc.PlanNotSelected {
		return nil, fiber.NewError(fiber.StatusConflict, "Student has not selected a payment plan")
	}

	structRow, err := s.structureFor(instituteID, student)
	if err != nil {
		return nil, err
	}

	var cohort cohortModel.CohortModel
	if err := s.DB.
		Where("cohort_id = ? AND cohort_institute_id = ?", student.StudentCohortID, instituteID).
		First(&cohort).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusConflict, "Student cohort no longer exists")
		}
		return nil, err
	}

	fs, err := toEngineStructure(structRow, cohort.CohortProgramStart)
	if err != nil {
		return nil, err
	}

	scholarship, err := s.scholarshipFor(instituteID, student.StudentID)
	if err != nil {
		return nil, err
	}

	sched, err := feecalc.BuildSchedule(fs, plan, scholarship)
	if err != nil {
		var invalid *feecalc.InvalidFeeStructureError
		if errors.As(err, &invalid) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, invalid.Error())
		}
		return nil, err
	}

	if err := s.applyWaivers(instituteID, student.StudentID, sched); err != nil {
		return nil, err
	}

	txs, err := s.transactionsFor(instituteID, student.StudentID)
	if err != nil {
		return nil, err
	}

	report, err := feecalc.ResolveStatuses(sched, txs, today)
	if err != nil {
		var inconsistent *feecalc.InconsistentTargetError
		if errors.As(err, &inconsistent) {
			return nil, fiber.NewError(fiber.StatusConflict, inconsistent.Error())
		}
		return nil, err
	}

	return &StudentFeeState{
		Student:  student,
		Plan:     plan,
		Schedule: sched,
		Report:   report,
	}, nil
}

// structureFor prefers the student's custom structure over the cohort one.
func (s *FeeService) structureFor(instituteID uuid.UUID, student studentModel.StudentModel) (feeModel.FeeStructureModel, error) {
	var row feeModel.FeeStructureModel
	err := s.DB.
		Where("fee_structure_institute_id = ? AND fee_structure_student_id = ? AND fee_structure_scope = ?",
			instituteID, student.StudentID, feeModel.ScopeCustom).
		First(&row).Error
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return row, err
	}

	err = s.DB.
		Where("fee_structure_institute_id = ? AND fee_structure_cohort_id = ? AND fee_structure_scope = ?",
			instituteID, student.StudentCohortID, feeModel.ScopeCohort).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, fiber.NewError(fiber.StatusConflict, "No fee structure configured for this student's cohort")
	}
	return row, err
}

func (s *FeeService) scholarshipFor(instituteID, studentID uuid.UUID) (*feecalc.Scholarship, error) {
	var award feeModel.StudentScholarshipModel
	err := s.DB.
		Preload("Scholarship").
		Where("student_scholarship_institute_id = ? AND student_scholarship_student_id = ?",
			instituteID, studentID).
		First(&award).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if award.Scholarship == nil || !award.Scholarship.ScholarshipIsActive {
		return nil, nil
	}
	return &feecalc.Scholarship{
		AmountPercent:             award.Scholarship.ScholarshipPercent,
		AdditionalDiscountPercent: award.Scholarship.ScholarshipAdditionalDiscountPercent,
	}, nil
}

func (s *FeeService) applyWaivers(instituteID, studentID uuid.UUID, sched *feecalc.Schedule) error {
	var waivers []feeModel.FeeWaiverModel
	if err := s.DB.
		Where("fee_waiver_institute_id = ? AND fee_waiver_student_id = ?", instituteID, studentID).
		Find(&waivers).Error; err != nil {
		return err
	}
	// An orphan waiver usually means the student switched plans after it was
	// granted. Unlike an orphan transaction it carries no money, so it is
	// logged rather than failing the schedule.
	for _, orphan := range markWaivedLines(sched, waivers) {
		log.Printf("[WARN] fee waiver %s targets no schedule line %s (student %s)",
			orphan.FeeWaiverID, waiverKey(orphan), studentID)
	}
	return nil
}

// markWaivedLines flags every matched line and returns the orphans.
func markWaivedLines(sched *feecalc.Schedule, waivers []feeModel.FeeWaiverModel) []feeModel.FeeWaiverModel {
	var orphans []feeModel.FeeWaiverModel
	for _, w := range waivers {
		if line := sched.Line(waiverKey(w)); line != nil {
			line.Waived = true
			continue
		}
		orphans = append(orphans, w)
	}
	return orphans
}

func waiverKey(w feeModel.FeeWaiverModel) feecalc.LineKey {
	return feecalc.LineKey{
		Kind:        feecalc.LineKind(w.FeeWaiverTargetKind),
		Semester:    int(w.FeeWaiverSemester),
		Installment: int(w.FeeWaiverInstallment),
	}
}

func (s *FeeService) transactionsFor(instituteID, studentID uuid.UUID) ([]feecalc.Transaction, error) {
	var rows []txModel.TransactionModel
	if err := s.DB.
		Where("transaction_institute_id = ? AND transaction_student_id = ?", instituteID, studentID).
		Order("transaction_paid_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]feecalc.Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, feecalc.Transaction{
			ID: r.TransactionID,
			Target: feecalc.LineKey{
				Kind:        feecalc.LineKind(r.TransactionTargetKind),
				Semester:    int(r.TransactionSemester),
				Installment: int(r.TransactionInstallment),
			},
			Amount:       r.TransactionAmount,
			Method:       r.TransactionMethod,
			Verification: feecalc.VerificationStatus(r.TransactionVerification),
			PaidAt:       r.TransactionPaidAt,
		})
	}
	return out, nil
}

// toEngineStructure maps a stored structure row onto the engine input,
// decoding the custom due date JSON ({"installment:1:2": "2026-03-15"}).
func toEngineStructure(row feeModel.FeeStructureModel, programStart time.Time) (feecalc.FeeStructure, error) {
	fs := feecalc.FeeStructure{
		TotalProgramFee:              row.FeeStructureTotalProgramFee,
		AdmissionFee:                 row.FeeStructureAdmissionFee,
		NumberOfSemesters:            int(row.FeeStructureNumberOfSemesters),
		InstallmentsPerSemester:      int(row.FeeStructureInstallmentsPerSemester),
		OneShotDiscountPercent:       row.FeeStructureOneShotDiscountPercent,
		GSTPercent:                   row.FeeStructureGSTPercent,
		ProgramFeeIncludesGST:        row.FeeStructureProgramFeeIncludesGST,
		EqualScholarshipDistribution: row.FeeStructureEqualScholarshipDistribution,
		ProgramStart:                 programStart,
		SemesterMonths:               int(row.FeeStructureSemesterMonths),
		CustomDatesEnabled:           row.FeeStructureCustomDatesEnabled,
	}

	if row.FeeStructureCustomDatesEnabled && len(row.FeeStructureCustomDueDates) > 0 {
		var raw map[string]string
		if err := sonic.Unmarshal(row.FeeStructureCustomDueDates, &raw); err != nil {
			return fs, fiber.NewError(fiber.StatusUnprocessableEntity, "Malformed custom due dates")
		}
		fs.CustomDueDates = make(map[feecalc.LineKey]time.Time, len(raw))
		for k, v := range raw {
			key, err := parseLineKey(k)
			if err != nil {
				return fs, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			}
			due, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fs, fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("Malformed due date %q for %s", v, k))
			}
			fs.CustomDueDates[key] = due
		}
	}

	return fs, nil
}

// parseLineKey reverses LineKey.String(): "admission", "one_shot" or
// "installment:<semester>:<installment>".
func parseLineKey(s string) (feecalc.LineKey, error) {
	switch s {
	case string(feecalc.LineAdmission):
		return feecalc.AdmissionKey(), nil
	case string(feecalc.LineOneShot):
		return feecalc.OneShotKey(), nil
	}
	var sem, inst int
	if _, err := fmt.Sscanf(s, "installment:%d:%d", &sem, &inst); err != nil || sem < 1 || inst < 1 {
		return feecalc.LineKey{}, fmt.Errorf("malformed line key %q", s)
	}
	return feecalc.InstallmentKey(sem, inst), nil
}
