package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "campushq_backend/internals/features/academics/attendance/dto"
	model "campushq_backend/internals/features/academics/attendance/model"
	helper "campushq_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ======================= SESSIONS ======================= */

// POST /api/a/attendance/sessions
func (h *AttendanceController) CreateSession(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create attendance session")
	}
	return helper.JsonCreated(c, "Attendance session created", dto.FromSessionModel(*m))
}

// GET /api/a/attendance/sessions?cohort_id=&epic_id=
func (h *AttendanceController) ListSessions(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_institute_id = ?", instituteID)
	if v := c.Query("cohort_id"); v != "" {
		base = base.Where("attendance_session_cohort_id = ?", v)
	}
	if v := c.Query("epic_id"); v != "" {
		base = base.Where("attendance_session_epic_id = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AttendanceSessionModel
	if err := base.
		Order("attendance_session_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromSessionModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// DELETE /api/a/attendance/sessions/:id
func (h *AttendanceController) DeleteSession(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("attendance_session_id = ? AND attendance_session_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.AttendanceSessionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Attendance session not found")
	}
	return helper.JsonDeleted(c, "Attendance session deleted", fiber.Map{"id": c.Params("id")})
}

/* ======================= RECORDS ======================= */

// POST /api/a/attendance/sessions/:id/records
// Bulk upsert: one call marks (or re-marks) the whole session.
func (h *AttendanceController) MarkRecords(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	// session must belong to the caller's institute
	var session model.AttendanceSessionModel
	if err := h.DB.
		Where("attendance_session_id = ? AND attendance_session_institute_id = ?", sessionID, instituteID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance session not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.MarkRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	rows := make([]model.AttendanceRecordModel, 0, len(req.Records))
	for _, r := range req.Records {
		rows = append(rows, model.AttendanceRecordModel{
			AttendanceRecordSessionID: sessionID,
			AttendanceRecordStudentID: r.StudentID,
			AttendanceRecordStatus:    r.Status,
			AttendanceRecordNote:      r.Note,
		})
	}

	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_session_id"},
			{Name: "attendance_record_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_record_status", "attendance_record_note"}),
	}).Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance records")
	}

	return helper.JsonOK(c, "Attendance recorded", dto.FromRecordModels(rows))
}

// GET /api/a/attendance/sessions/:id/records
func (h *AttendanceController) ListRecords(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.AttendanceRecordModel
	if err := h.DB.
		Joins("JOIN attendance_sessions s ON s.attendance_session_id = attendance_records.attendance_record_session_id").
		Where("attendance_records.attendance_record_session_id = ? AND s.attendance_session_institute_id = ?",
			c.Params("id"), instituteID).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromRecordModels(list))
}

/* ======================= SUMMARY ======================= */

// GET /api/a/attendance/summary?cohort_id=&student_id=
// Percentage counts late as attended and drops excused sessions from the
// denominator.
func (h *AttendanceController) Summary(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	cohortID := c.Query("cohort_id")
	if cohortID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "cohort_id is required")
	}

	summary, err := h.summarize(instituteID, cohortID, c.Query("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", summary)
}

func (h *AttendanceController) summarize(instituteID uuid.UUID, cohortID, studentID string) (dto.AttendanceSummaryResponse, error) {
	var out dto.AttendanceSummaryResponse

	base := h.DB.Table("attendance_records").
		Joins("JOIN attendance_sessions s ON s.attendance_session_id = attendance_records.attendance_record_session_id").
		Where("s.attendance_session_institute_id = ? AND s.attendance_session_cohort_id = ? AND s.attendance_session_deleted_at IS NULL",
			instituteID, cohortID)
	if studentID != "" {
		base = base.Where("attendance_records.attendance_record_student_id = ?", studentID)
	}

	row := struct {
		Total, Present, Absent, Late, Excused int64
	}{}
	err := base.Select(`
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE attendance_record_status = 'present') AS present,
		COUNT(*) FILTER (WHERE attendance_record_status = 'absent')  AS absent,
		COUNT(*) FILTER (WHERE attendance_record_status = 'late')    AS late,
		COUNT(*) FILTER (WHERE attendance_record_status = 'excused') AS excused
	`).Scan(&row).Error
	if err != nil {
		return out, err
	}

	out.TotalSessions = row.Total
	out.Present = row.Present
	out.Absent = row.Absent
	out.Late = row.Late
	out.Excused = row.Excused
	if denom := row.Total - row.Excused; denom > 0 {
		out.Percentage = float64(row.Present+row.Late) / float64(denom) * 100
	}
	return out, nil
}
