package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/finance/feestructures/dto"
	model "campushq_backend/internals/features/finance/feestructures/model"
	helper "campushq_backend/internals/helpers"
)

type FeeStructureController struct {
	DB *gorm.DB
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{DB: db}
}

var hundred = decimal.NewFromInt(100)

func validateAmounts(total, admission, oneShotPct, gstPct decimal.Decimal) error {
	if total.IsNegative() || admission.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Fee amounts must not be negative")
	}
	if admission.GreaterThan(total) {
		return fiber.NewError(fiber.StatusBadRequest, "Admission fee must not exceed total program fee")
	}
	if oneShotPct.IsNegative() || oneShotPct.GreaterThan(hundred) {
		return fiber.NewError(fiber.StatusBadRequest, "One-shot discount percent must be between 0 and 100")
	}
	if gstPct.IsNegative() || gstPct.GreaterThan(hundred) {
		return fiber.NewError(fiber.StatusBadRequest, "GST percent must be between 0 and 100")
	}
	return nil
}

/* ======================= CREATE ======================= */
// POST /api/a/fee-structures
func (h *FeeStructureController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if err := validateAmounts(
		req.FeeStructureTotalProgramFee,
		req.FeeStructureAdmissionFee,
		req.FeeStructureOneShotDiscountPercent,
		req.FeeStructureGSTPercent,
	); err != nil {
		return err
	}
	if req.FeeStructureScope == string(model.ScopeCustom) && req.FeeStructureStudentID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "A custom fee structure requires a student")
	}
	if req.FeeStructureScope == string(model.ScopeCohort) && req.FeeStructureStudentID != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A cohort fee structure must not name a student")
	}

	// One live structure per scope target.
	dup := h.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_institute_id = ? AND fee_structure_cohort_id = ? AND fee_structure_scope = ?",
			instituteID, req.FeeStructureCohortID, req.FeeStructureScope)
	if req.FeeStructureStudentID != nil {
		dup = dup.Where("fee_structure_student_id = ?", *req.FeeStructureStudentID)
	}
	var exists int64
	if err := dup.Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists > 0 {
		return fiber.NewError(fiber.StatusConflict, "A fee structure for this target already exists")
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee structure")
	}

	return helper.JsonCreated(c, "Fee structure created", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fee-structures/:id
func (h *FeeStructureController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_id = ? AND fee_structure_institute_id = ?", c.Params("id"), instituteID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/a/fee-structures?cohort_id=&student_id=&scope=&page=&per_page=
func (h *FeeStructureController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_institute_id = ?", instituteID)

	if v := strings.TrimSpace(c.Query("cohort_id")); v != "" {
		base = base.Where("fee_structure_cohort_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		base = base.Where("fee_structure_student_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("scope")); v != "" {
		base = base.Where("fee_structure_scope = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeeStructureModel
	if err := base.
		Order("fee_structure_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/a/fee-structures/:id
func (h *FeeStructureController) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.FeeStructureModel
	if err := h.DB.
		Where("fee_structure_id = ? AND fee_structure_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	total := curr.FeeStructureTotalProgramFee
	if req.FeeStructureTotalProgramFee != nil {
		total = *req.FeeStructureTotalProgramFee
	}
	admission := curr.FeeStructureAdmissionFee
	if req.FeeStructureAdmissionFee != nil {
		admission = *req.FeeStructureAdmissionFee
	}
	oneShot := curr.FeeStructureOneShotDiscountPercent
	if req.FeeStructureOneShotDiscountPercent != nil {
		oneShot = *req.FeeStructureOneShotDiscountPercent
	}
	gst := curr.FeeStructureGSTPercent
	if req.FeeStructureGSTPercent != nil {
		gst = *req.FeeStructureGSTPercent
	}
	if err := validateAmounts(total, admission, oneShot, gst); err != nil {
		return err
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_id = ?", curr.FeeStructureID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee structure")
	}

	var updated model.FeeStructureModel
	if err := h.DB.Where("fee_structure_id = ?", curr.FeeStructureID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Fee structure updated", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Fee structure updated", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/fee-structures/:id
func (h *FeeStructureController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("fee_structure_id = ? AND fee_structure_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.FeeStructureModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
	}

	return helper.JsonDeleted(c, "Fee structure deleted", fiber.Map{"id": c.Params("id")})
}
