package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/finance/payments/dto"
	model "campushq_backend/internals/features/finance/payments/model"
	studentModel "campushq_backend/internals/features/users/students/model"
	helper "campushq_backend/internals/helpers"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

/* ======================= RECORD ======================= */
// POST /api/a/transactions
func (h *TransactionController) Record(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if !req.TransactionAmount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be positive")
	}
	if req.TransactionTargetKind == "installment" && req.TransactionSemester < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "An installment payment needs at least a semester number")
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ? AND student_institute_id = ?", req.TransactionStudentID, instituteID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if student.StudentPaymentPlan == "not_selected" {
		return fiber.NewError(fiber.StatusConflict, "Student has not selected a payment plan")
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record transaction")
	}

	return helper.JsonCreated(c, "Transaction recorded", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/transactions?student_id=&verification=&page=&per_page=
func (h *TransactionController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.TransactionModel{}).
		Where("transaction_institute_id = ?", instituteID)

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		base = base.Where("transaction_student_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("verification")); v != "" {
		base = base.Where("transaction_verification = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.TransactionModel
	if err := base.
		Order("transaction_paid_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== VERIFY ======================== */
// PATCH /api/a/transactions/:id/verify
//
// Verification is one-way: a pending transaction becomes approved or
// rejected, and stays there.
func (h *TransactionController) Verify(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.VerifyTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if req.Action == "reject" && strings.TrimSpace(req.Reason) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "A rejection needs a reason")
	}

	var curr model.TransactionModel
	if err := h.DB.
		Where("transaction_id = ? AND transaction_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if curr.TransactionVerification != model.VerificationPending {
		return fiber.NewError(fiber.StatusConflict, "Transaction has already been verified")
	}

	verifiedBy, _ := helper.GetUserIDFromToken(c)
	now := time.Now()

	status := model.VerificationApproved
	if req.Action == "reject" {
		status = model.VerificationRejected
	}

	patch := map[string]any{
		"transaction_verification": status,
		"transaction_verified_by":  verifiedBy,
		"transaction_verified_at":  now,
	}
	if status == model.VerificationRejected {
		patch["transaction_reject_reason"] = req.Reason
	}

	// Guard the state transition at the DB too, in case two verifiers race.
	res := h.DB.Model(&model.TransactionModel{}).
		Where("transaction_id = ? AND transaction_verification = ?", curr.TransactionID, model.VerificationPending).
		Updates(patch)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify transaction")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Transaction has already been verified")
	}

	curr.TransactionVerification = status
	curr.TransactionVerifiedBy = &verifiedBy
	curr.TransactionVerifiedAt = &now
	if status == model.VerificationRejected {
		curr.TransactionRejectReason = req.Reason
	}
	return helper.JsonUpdated(c, "Transaction verified", dto.FromModel(curr))
}
