package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	attendanceModel "campushq_backend/internals/features/academics/attendance/model"
	payService "campushq_backend/internals/features/finance/payments/service"
	dto "campushq_backend/internals/features/reporting/reports/dto"
	model "campushq_backend/internals/features/reporting/reports/model"
	studentModel "campushq_backend/internals/features/users/students/model"
	helper "campushq_backend/internals/helpers"
)

type ReportController struct {
	DB  *gorm.DB
	Fee *payService.FeeService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Fee: payService.NewFeeService(db)}
}

/* ======================= GENERATE ======================= */
// POST /api/a/reports
func (h *ReportController) Generate(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var (
		content any
		genErr  error
	)
	switch model.ReportType(req.ReportType) {
	case model.ReportAttendanceSummary:
		content, genErr = h.attendanceSummary(instituteID, req.ReportCohortID)
	case model.ReportFeeCollection:
		content, genErr = h.feeCollection(instituteID, req.ReportCohortID)
	}

	generatedBy, _ := helper.GetUserIDFromToken(c)
	row := &model.ReportModel{
		ReportInstituteID: instituteID,
		ReportCohortID:    &req.ReportCohortID,
		ReportType:        model.ReportType(req.ReportType),
		ReportStatus:      model.ReportStatusReady,
		ReportGeneratedBy: &generatedBy,
	}

	if genErr != nil {
		if fe, ok := genErr.(*fiber.Error); ok && fe.Code < fiber.StatusInternalServerError {
			return genErr
		}
		row.ReportStatus = model.ReportStatusFailed
		row.ReportError = genErr.Error()
	} else {
		buf, err := sonic.Marshal(content)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode report")
		}
		row.ReportContent = buf
	}

	if err := h.DB.Create(row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store report")
	}

	return helper.JsonCreated(c, "Report generated", dto.FromModel(*row))
}

type attendanceSummaryRow struct {
	StudentID         uuid.UUID       `json:"student_id"`
	StudentRollNumber string          `json:"student_roll_number"`
	StudentFullName   string          `json:"student_full_name"`
	Present           int             `json:"present"`
	Absent            int             `json:"absent"`
	Late              int             `json:"late"`
	Excused           int             `json:"excused"`
	Percentage        decimal.Decimal `json:"percentage"`
}

type attendanceSummaryContent struct {
	CohortID      uuid.UUID              `json:"cohort_id"`
	GeneratedAt   time.Time              `json:"generated_at"`
	TotalSessions int64                  `json:"total_sessions"`
	Rows          []attendanceSummaryRow `json:"rows"`

	// Narrative is filled in later by an external writer, never here.
	Narrative string `json:"narrative,omitempty"`
}

func (h *ReportController) attendanceSummary(instituteID, cohortID uuid.UUID) (any, error) {
	var totalSessions int64
	if err := h.DB.Model(&attendanceModel.AttendanceSessionModel{}).
		Where("attendance_session_institute_id = ? AND attendance_session_cohort_id = ?", instituteID, cohortID).
		Count(&totalSessions).Error; err != nil {
		return nil, err
	}

	var students []studentModel.StudentModel
	if err := h.DB.
		Where("student_institute_id = ? AND student_cohort_id = ? AND student_is_active = true",
			instituteID, cohortID).
		Order("student_roll_number ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	content := attendanceSummaryContent{
		CohortID:      cohortID,
		GeneratedAt:   time.Now(),
		TotalSessions: totalSessions,
		Rows:          make([]attendanceSummaryRow, 0, len(students)),
	}

	for _, st := range students {
		var agg struct {
			Present int
			Absent  int
			Late    int
			Excused int
		}
		err := h.DB.Model(&attendanceModel.AttendanceRecordModel{}).
			Select(`
				COUNT(*) FILTER (WHERE attendance_record_status = 'present') AS present,
				COUNT(*) FILTER (WHERE attendance_record_status = 'absent')  AS absent,
				COUNT(*) FILTER (WHERE attendance_record_status = 'late')    AS late,
				COUNT(*) FILTER (WHERE attendance_record_status = 'excused') AS excused`).
			Joins(`JOIN attendance_sessions
				ON attendance_sessions.attendance_session_id = attendance_records.attendance_record_session_id`).
			Where("attendance_sessions.attendance_session_cohort_id = ?", cohortID).
			Where("attendance_records.attendance_record_student_id = ?", st.StudentID).
			Scan(&agg).Error
		if err != nil {
			return nil, err
		}

		row := attendanceSummaryRow{
			StudentID:         st.StudentID,
			StudentRollNumber: st.StudentRollNumber,
			StudentFullName:   st.StudentFullName,
			Present:           agg.Present,
			Absent:            agg.Absent,
			Late:              agg.Late,
			Excused:           agg.Excused,
		}
		counted := agg.Present + agg.Absent + agg.Late
		if counted > 0 {
			row.Percentage = decimal.NewFromInt(int64(agg.Present + agg.Late)).
				Div(decimal.NewFromInt(int64(counted))).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		content.Rows = append(content.Rows, row)
	}

	return content, nil
}

type feeCollectionRow struct {
	StudentID         uuid.UUID       `json:"student_id"`
	StudentRollNumber string          `json:"student_roll_number"`
	StudentFullName   string          `json:"student_full_name"`
	Plan              string          `json:"plan"`
	TotalPayable      decimal.Decimal `json:"total_payable"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalPending      decimal.Decimal `json:"total_pending"`
	TotalOverdue      decimal.Decimal `json:"total_overdue"`
	Note              string          `json:"note,omitempty"`
}

type feeCollectionContent struct {
	CohortID    uuid.UUID          `json:"cohort_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Rows        []feeCollectionRow `json:"rows"`

	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalOverdue decimal.Decimal `json:"total_overdue"`

	// Narrative is filled in later by an external writer, never here.
	Narrative string `json:"narrative,omitempty"`
}

func (h *ReportController) feeCollection(instituteID, cohortID uuid.UUID) (any, error) {
	var students []studentModel.StudentModel
	if err := h.DB.
		Where("student_institute_id = ? AND student_cohort_id = ? AND student_is_active = true",
			instituteID, cohortID).
		Order("student_roll_number ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	content := feeCollectionContent{
		CohortID:     cohortID,
		GeneratedAt:  time.Now(),
		Rows:         make([]feeCollectionRow, 0, len(students)),
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		TotalOverdue: decimal.Zero,
	}

	now := time.Now()
	for _, st := range students {
		row := feeCollectionRow{
			StudentID:         st.StudentID,
			StudentRollNumber: st.StudentRollNumber,
			StudentFullName:   st.StudentFullName,
			Plan:              st.StudentPaymentPlan,
		}

		state, err := h.Fee.Resolve(instituteID, st.StudentID, now)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				row.Note = fe.Message
				content.Rows = append(content.Rows, row)
				continue
			}
			return nil, err
		}

		row.TotalPayable = state.Schedule.TotalPayable
		row.TotalPaid = state.Report.Summary.TotalPaid
		row.TotalPending = state.Report.Summary.TotalPending
		row.TotalOverdue = state.Report.Summary.TotalOverdue
		content.Rows = append(content.Rows, row)

		content.TotalPaid = content.TotalPaid.Add(row.TotalPaid)
		content.TotalPending = content.TotalPending.Add(row.TotalPending)
		content.TotalOverdue = content.TotalOverdue.Add(row.TotalOverdue)
	}

	return content, nil
}

/* ======================== GET BY ID ======================== */
// GET /api/a/reports/:id
func (h *ReportController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.ReportModel
	if err := h.DB.
		Where("report_id = ? AND report_institute_id = ?", c.Params("id"), instituteID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Report not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/a/reports?type=&cohort_id=&page=&per_page=
func (h *ReportController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ReportModel{}).
		Where("report_institute_id = ?", instituteID)

	if v := strings.TrimSpace(c.Query("type")); v != "" {
		base = base.Where("report_type = ?", v)
	}
	if v := strings.TrimSpace(c.Query("cohort_id")); v != "" {
		base = base.Where("report_cohort_id = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ReportModel
	if err := base.
		Order("report_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/reports/:id
func (h *ReportController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("report_id = ? AND report_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.ReportModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}

	return helper.JsonDeleted(c, "Report deleted", fiber.Map{"id": c.Params("id")})
}
