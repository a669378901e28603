package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/finance/feestructures/dto"
	model "campushq_backend/internals/features/finance/feestructures/model"
	helper "campushq_backend/internals/helpers"
)

type ScholarshipController struct {
	DB *gorm.DB
}

func NewScholarshipController(db *gorm.DB) *ScholarshipController {
	return &ScholarshipController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/scholarships
func (h *ScholarshipController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if req.ScholarshipPercent.IsNegative() || req.ScholarshipPercent.GreaterThan(hundred) ||
		req.ScholarshipAdditionalDiscountPercent.IsNegative() || req.ScholarshipAdditionalDiscountPercent.GreaterThan(hundred) {
		return fiber.NewError(fiber.StatusBadRequest, "Percent values must be between 0 and 100")
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create scholarship")
	}

	return helper.JsonCreated(c, "Scholarship created", dto.ScholarshipFromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/scholarships?q=&page=&per_page=
func (h *ScholarshipController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ScholarshipModel{}).
		Where("scholarship_institute_id = ?", instituteID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("scholarship_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ScholarshipModel
	if err := base.
		Order("scholarship_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.ScholarshipFromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/a/scholarships/:id
func (h *ScholarshipController) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if req.ScholarshipPercent != nil &&
		(req.ScholarshipPercent.IsNegative() || req.ScholarshipPercent.GreaterThan(hundred)) {
		return fiber.NewError(fiber.StatusBadRequest, "Percent values must be between 0 and 100")
	}
	if req.ScholarshipAdditionalDiscountPercent != nil &&
		(req.ScholarshipAdditionalDiscountPercent.IsNegative() || req.ScholarshipAdditionalDiscountPercent.GreaterThan(hundred)) {
		return fiber.NewError(fiber.StatusBadRequest, "Percent values must be between 0 and 100")
	}

	var curr model.ScholarshipModel
	if err := h.DB.
		Where("scholarship_id = ? AND scholarship_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Scholarship not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", dto.ScholarshipFromModel(curr))
	}

	if err := h.DB.Model(&model.ScholarshipModel{}).
		Where("scholarship_id = ?", curr.ScholarshipID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update scholarship")
	}

	var updated model.ScholarshipModel
	if err := h.DB.Where("scholarship_id = ?", curr.ScholarshipID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Scholarship updated", dto.ScholarshipFromModel(curr))
	}
	return helper.JsonUpdated(c, "Scholarship updated", dto.ScholarshipFromModel(updated))
}

/* ======================== GRANT / REVOKE ======================== */
// POST /api/a/scholarships/grants
func (h *ScholarshipController) Grant(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GrantScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var sch model.ScholarshipModel
	if err := h.DB.
		Where("scholarship_id = ? AND scholarship_institute_id = ?", req.StudentScholarshipScholarshipID, instituteID).
		First(&sch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Scholarship not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !sch.ScholarshipIsActive {
		return fiber.NewError(fiber.StatusConflict, "Scholarship is no longer active")
	}

	grantedBy, _ := helper.GetUserIDFromToken(c)
	m := &model.StudentScholarshipModel{
		StudentScholarshipInstituteID:   instituteID,
		StudentScholarshipStudentID:     req.StudentScholarshipStudentID,
		StudentScholarshipScholarshipID: req.StudentScholarshipScholarshipID,
		StudentScholarshipGrantedBy:     &grantedBy,
	}
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Student already holds a scholarship")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to grant scholarship")
	}
	m.Scholarship = &sch

	return helper.JsonCreated(c, "Scholarship granted", dto.AwardFromModel(*m))
}

// DELETE /api/a/scholarships/grants/:id
func (h *ScholarshipController) Revoke(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("student_scholarship_id = ? AND student_scholarship_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.StudentScholarshipModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Grant not found")
	}

	return helper.JsonDeleted(c, "Scholarship revoked", fiber.Map{"id": c.Params("id")})
}
