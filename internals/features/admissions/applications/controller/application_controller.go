package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushq_backend/internals/features/admissions/applications/dto"
	model "campushq_backend/internals/features/admissions/applications/model"
	helper "campushq_backend/internals/helpers"
)

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/applications
func (h *ApplicationController) Create(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m := req.ToModel(instituteID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create application")
	}
	return helper.JsonCreated(c, "Application created", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/applications?status=&cohort_id=
func (h *ApplicationController) List(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ApplicationModel{}).
		Where("application_institute_id = ?", instituteID)
	if v := c.Query("status"); v != "" {
		base = base.Where("application_status = ?", v)
	}
	if v := c.Query("cohort_id"); v != "" {
		base = base.Where("application_cohort_id = ?", v)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ApplicationModel
	if err := base.
		Order("application_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/applications/:id
func (h *ApplicationController) GetByID(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.ApplicationModel
	if err := h.DB.
		Where("application_id = ? AND application_institute_id = ?", c.Params("id"), instituteID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (PATCH) ======================== */
// PATCH /api/a/applications/:id — applicant details only; status moves via /status
func (h *ApplicationController) Update(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.ApplicationModel
	if err := h.DB.
		Where("application_id = ? AND application_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := req.Patch()
	if len(patch) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromModel(curr))
	}
	if err := h.DB.Model(&model.ApplicationModel{}).
		Where("application_id = ?", curr.ApplicationID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update application")
	}

	var updated model.ApplicationModel
	if err := h.DB.Where("application_id = ?", curr.ApplicationID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Application updated", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Application updated", dto.FromModel(updated))
}

/* ======================== STATUS TRANSITION ======================== */
// PATCH /api/a/applications/:id/status
func (h *ApplicationController) Transition(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var curr model.ApplicationModel
	if err := h.DB.
		Where("application_id = ? AND application_institute_id = ?", c.Params("id"), instituteID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !curr.ApplicationStatus.CanTransitionTo(req.Status) {
		return fiber.NewError(fiber.StatusConflict,
			"Cannot move application from "+string(curr.ApplicationStatus)+" to "+string(req.Status))
	}

	now := time.Now()
	patch := map[string]interface{}{"application_status": req.Status}
	if req.Note != nil {
		patch["application_note"] = *req.Note
	}
	switch req.Status {
	case model.ApplicationSubmitted:
		patch["application_submitted_at"] = now
	case model.ApplicationAccepted, model.ApplicationRejected:
		patch["application_decided_at"] = now
	}

	if err := h.DB.Model(&model.ApplicationModel{}).
		Where("application_id = ?", curr.ApplicationID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update application status")
	}

	var updated model.ApplicationModel
	if err := h.DB.Where("application_id = ?", curr.ApplicationID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "Application status updated", dto.FromModel(curr))
	}
	return helper.JsonUpdated(c, "Application status updated", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/applications/:id
func (h *ApplicationController) Delete(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromToken(c)
	if err != nil {
		return err
	}

	res := h.DB.
		Where("application_id = ? AND application_institute_id = ?", c.Params("id"), instituteID).
		Delete(&model.ApplicationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Application not found")
	}
	return helper.JsonDeleted(c, "Application deleted", fiber.Map{"id": c.Params("id")})
}
