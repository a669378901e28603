package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	txModel "campushq_backend/internals/features/finance/payments/model"
	dto "campushq_backend/internals/features/users/students/dto"
	model "campushq_backend/internals/features/users/students/model"
	helper "campushq_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A student with this roll number already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", c.Params("id"), instituteID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/a/students?q=&cohort_id=&payment_plan=&page=&per_page=
func (h *StudentController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.StudentModel{}).
		Where("student_institute_id = ?", instituteID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(student_full_name ILIKE ? OR student_roll_number ILIKE ?)", like, like)
	}
	if v := strings.TrimSpace(c.Query("cohort_id")); v != "" {
		base = base.Where("student_cohort_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("payment_plan")); v != "" {
		base = base.Where("student_payment_plan = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.StudentModel
	if err := base.
		Order("student_roll_number ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", curr.StudentID).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A student with this roll number already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	var updated model.StudentModel
	if err := h.DB.Where("student_id = ?", curr.StudentID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Student updated", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Student updated", dto.FromModel(updated))
}

/* ======================== PAYMENT PLAN ======================== */
// PATCH /api/a/students/:id/payment-plan
//
// The plan locks once any approved transaction exists for the student;
// changing it afterwards would rewrite a schedule money has already been
// matched against.
func (h *StudentController) SelectPaymentPlan(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SelectPaymentPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if curr.StudentPaymentPlan == req.StudentPaymentPlan {
		return helper.JsonOK(c, "No changes", dto.FromModel(curr))
	}

	var approved int64
	if err := h.DB.Model(&txModel.TransactionModel{}).
		Where("transaction_student_id = ? AND transaction_verification = ?",
			curr.StudentID, txModel.VerificationApproved).
		Count(&approved).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if approved > 0 {
		return fiber.NewError(fiber.StatusConflict, "Payment plan is locked: approved payments already exist")
	}

	now := time.Now()
	patch := map[string]any{
		"student_payment_plan":   req.StudentPaymentPlan,
		"student_plan_locked_at": now,
	}
	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", curr.StudentID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update payment plan")
	}

	curr.StudentPaymentPlan = req.StudentPaymentPlan
	curr.StudentPlanLockedAt = &now
	return helper.JsonUpdated(c, "Payment plan updated", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("student_id = ? AND student_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": c.Params("id")})
}
