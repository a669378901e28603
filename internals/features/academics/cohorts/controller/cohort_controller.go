package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/academics/cohorts/dto"
	model "campushq_backend/internals/features/academics/cohorts/model"
	helper "campushq_backend/internals/helpers"
)

type CohortController struct {
	DB *gorm.DB
}

func NewCohortController(db *gorm.DB) *CohortController {
	return &CohortController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/cohorts
func (h *CohortController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCohortRequest
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
			return fiber.NewError(fiber.StatusConflict, "A cohort with this code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create cohort")
	}

	return helper.JsonCreated(c, "Cohort created", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/cohorts/:id
func (h *CohortController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.CohortModel
	if err := h.DB.
		Where("cohort_id = ? AND cohort_institute_id = ?", c.Params("id"), instituteID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cohort not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/a/cohorts?q=&page=&per_page=
func (h *CohortController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.CohortModel{}).
		Where("cohort_institute_id = ?", instituteID)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("(cohort_code ILIKE ? OR cohort_name ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.CohortModel
	if err := base.
		Order("cohort_program_start DESC, cohort_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== UPDATE (PATCH, partial) ======================== */
// PATCH /api/a/cohorts/:id
func (h *CohortController) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCohortRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.CohortModel
	if err := h.DB.
		Where("cohort_id = ? AND cohort_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cohort not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.CohortModel{}).
		Where("cohort_id = ?", curr.CohortID).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A cohort with this code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cohort")
	}

	var updated model.CohortModel
	if err := h.DB.Where("cohort_id = ?", curr.CohortID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Cohort updated", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Cohort updated", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/cohorts/:id
func (h *CohortController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("cohort_id = ? AND cohort_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.CohortModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cohort not found")
	}

	return helper.JsonDeleted(c, "Cohort deleted", fiber.Map{"id": c.Params("id")})
}
