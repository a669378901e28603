package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/finance/payments/dto"
	service "campushq_backend/internals/features/finance/payments/service"
	studentModel "campushq_backend/internals/features/users/students/model"
	helper "campushq_backend/internals/helpers"
)

type FeeScheduleController struct {
	DB      *gorm.DB
	Service *service.FeeService
}

func NewFeeScheduleController(db *gorm.DB) *FeeScheduleController {
	return &FeeScheduleController{DB: db, Service: service.NewFeeService(db)}
}

// asOf lets finance staff replay a past statement (?as_of=2026-02-01).
func asOf(c *fiber.Ctx) (time.Time, error) {
	v := c.Query("as_of")
	if v == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "as_of must be YYYY-MM-DD")
	}
	return t, nil
}

/* ======================== STUDENT SCHEDULE ======================== */
// GET /api/a/students/:id/fee-schedule
func (h *FeeScheduleController) StudentSchedule(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	today, err := asOf(c)
	if err != nil {
		return err
	}

	state, err := h.Service.Resolve(instituteID, studentID, today)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", dto.FeeScheduleResponse{
		StudentID: state.Student.StudentID,
		Plan:      string(state.Plan),
		Schedule:  state.Schedule,
		Report:    state.Report,
	})
}

/* ======================== MY SCHEDULE ======================== */
// GET /api/u/me/fee-schedule
func (h *FeeScheduleController) MySchedule(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := helper.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	state, err := h.Service.Resolve(instituteID, studentID, time.Now())
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", dto.FeeScheduleResponse{
		StudentID: state.Student.StudentID,
		Plan:      string(state.Plan),
		Schedule:  state.Schedule,
		Report:    state.Report,
	})
}

/* ======================== COHORT SUMMARY ======================== */
// GET /api/a/cohorts/:id/fee-summary
//
// Students without a selected plan or without a usable structure show up
// with an error note instead of failing the whole summary.
func (h *FeeScheduleController) CohortSummary(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}
	cohortID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cohort id")
	}
	today, err := asOf(c)
	if err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := h.DB.
		Where("student_institute_id = ? AND student_cohort_id = ? AND student_is_active = true",
			instituteID, cohortID).
		Order("student_roll_number ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.CohortFeeSummaryResponse{
		CohortID:     cohortID,
		AsOf:         today,
		Rows:         make([]dto.CohortFeeSummaryRow, 0, len(students)),
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		TotalOverdue: decimal.Zero,
	}

	for _, st := range students {
		row := dto.CohortFeeSummaryRow{
			StudentID:         st.StudentID,
			StudentRollNumber: st.StudentRollNumber,
			StudentFullName:   st.StudentFullName,
			Plan:              st.StudentPaymentPlan,
		}

		state, err := h.Service.Resolve(instituteID, st.StudentID, today)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				row.Error = fe.Message
				resp.Rows = append(resp.Rows, row)
				continue
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		row.TotalPayable = state.Schedule.TotalPayable
		row.TotalPaid = state.Report.Summary.TotalPaid
		row.TotalPending = state.Report.Summary.TotalPending
		row.TotalOverdue = state.Report.Summary.TotalOverdue
		resp.Rows = append(resp.Rows, row)

		resp.TotalPaid = resp.TotalPaid.Add(row.TotalPaid)
		resp.TotalPending = resp.TotalPending.Add(row.TotalPending)
		resp.TotalOverdue = resp.TotalOverdue.Add(row.TotalOverdue)
	}

	return helper.JsonOK(c, "OK", resp)
}
