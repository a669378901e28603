package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/finance/feestructures/dto"
	model "campushq_backend/internals/features/finance/feestructures/model"
	helper "campushq_backend/internals/helpers"
)

type FeeWaiverController struct {
	DB *gorm.DB
}

func NewFeeWaiverController(db *gorm.DB) *FeeWaiverController {
	return &FeeWaiverController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fee-waivers
func (h *FeeWaiverController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeWaiverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if req.FeeWaiverTargetKind == string(model.WaiverTargetInstallment) &&
		(req.FeeWaiverSemester < 1 || req.FeeWaiverInstallment < 1) {
		return fiber.NewError(fiber.StatusBadRequest, "An installment waiver needs semester and installment numbers")
	}

	grantedBy, _ := helper.GetUserIDFromToken(c)
	m := req.ToModel(instituteID, &grantedBy)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee waiver")
	}

	return helper.JsonCreated(c, "Fee waiver created", dto.WaiverFromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/fee-waivers?student_id=&page=&per_page=
func (h *FeeWaiverController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.FeeWaiverModel{}).
		Where("fee_waiver_institute_id = ?", instituteID)

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		base = base.Where("fee_waiver_student_id = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeeWaiverModel
	if err := base.
		Order("fee_waiver_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.WaiversFromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/fee-waivers/:id
func (h *FeeWaiverController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("fee_waiver_id = ? AND fee_waiver_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.FeeWaiverModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee waiver not found")
	}

	return helper.JsonDeleted(c, "Fee waiver deleted", fiber.Map{"id": c.Params("id")})
}
