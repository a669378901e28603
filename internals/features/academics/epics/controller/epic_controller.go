package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/academics/epics/dto"
	model "campushq_backend/internals/features/academics/epics/model"
	helper "campushq_backend/internals/helpers"
)

type EpicController struct {
	DB *gorm.DB
}

func NewEpicController(db *gorm.DB) *EpicController {
	return &EpicController{DB: db}
}

// POST /api/a/epics
func (h *EpicController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateEpicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create epic")
	}
	return helper.JsonCreated(c, "Epic created", dto.FromModel(*m))
}

// GET /api/a/epics?cohort_id=
func (h *EpicController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.EpicModel{}).
		Where("epic_institute_id = ?", instituteID)
	if cohortID := c.Query("cohort_id"); cohortID != "" {
		base = base.Where("epic_cohort_id = ?", cohortID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.EpicModel
	if err := base.
		Order("epic_position ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/epics/:id
func (h *EpicController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.EpicModel
	if err := h.DB.
		Where("epic_id = ? AND epic_institute_id = ?", c.Params("id"), instituteID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Epic not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// PATCH /api/a/epics/:id
func (h *EpicController) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEpicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.EpicModel
	if err := h.DB.
		Where("epic_id = ? AND epic_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Epic not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(curr))
	}
	if err := h.DB.Model(&model.EpicModel{}).
		Where("epic_id = ?", curr.EpicID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update epic")
	}

	var updated model.EpicModel
	if err := h.DB.Where("epic_id = ?", curr.EpicID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Epic updated", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Epic updated", dto.FromModel(updated))
}

// DELETE /api/a/epics/:id
func (h *EpicController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("epic_id = ? AND epic_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.EpicModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Epic not found")
	}
	return helper.JsonDeleted(c, "Epic deleted", fiber.Map{"id": c.Params("id")})
}
