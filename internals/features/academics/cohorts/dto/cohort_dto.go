package dto

import (
	"time"

	"github.com/google/uuid"

	m "campushq_backend/internals/features/academics/cohorts/model"
)

/* =============== REQUESTS =============== */

type CreateCohortRequest struct {
	CohortCode string `json:"cohort_code" validate:"required,min=2,max=32"`
	CohortName string `json:"cohort_name" validate:"required,min=3"`

	CohortProgramStart      time.Time `json:"cohort_program_start"       validate:"required"`
	CohortProgramMonths     int16     `json:"cohort_program_months"      validate:"required,gte=1,lte=72"`
	CohortNumberOfSemesters int16     `json:"cohort_number_of_semesters" validate:"required,gte=1,lte=12"`
}

func (r CreateCohortRequest) ToModel(instituteID uuid.UUID) *m.CohortModel {
	return &m.CohortModel{
		CohortInstituteID:       instituteID,
		CohortCode:              r.CohortCode,
		CohortName:              r.CohortName,
		CohortProgramStart:      r.CohortProgramStart,
		CohortProgramMonths:     r.CohortProgramMonths,
		CohortNumberOfSemesters: r.CohortNumberOfSemesters,
	}
}

// Update (partial)
type UpdateCohortRequest struct {
	CohortCode *string `json:"cohort_code" validate:"omitempty,min=2,max=32"`
	CohortName *string `json:"cohort_name" validate:"omitempty,min=3"`

	CohortProgramStart      *time.Time `json:"cohort_program_start"       validate:"omitempty"`
	CohortProgramMonths     *int16     `json:"cohort_program_months"      validate:"omitempty,gte=1,lte=72"`
	CohortNumberOfSemesters *int16     `json:"cohort_number_of_semesters" validate:"omitempty,gte=1,lte=12"`
}

func (r UpdateCohortRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.CohortCode != nil {
		patch["cohort_code"] = *r.CohortCode
	}
	if r.CohortName != nil {
		patch["cohort_name"] = *r.CohortName
	}
	if r.CohortProgramStart != nil {
		patch["cohort_program_start"] = *r.CohortProgramStart
	}
	if r.CohortProgramMonths != nil {
		patch["cohort_program_months"] = *r.CohortProgramMonths
	}
	if r.CohortNumberOfSemesters != nil {
		patch["cohort_number_of_semesters"] = *r.CohortNumberOfSemesters
	}
	return patch
}

/* =============== RESPONSES =============== */

type CohortResponse struct {
	CohortID uuid.UUID `json:"cohort_id"`

	CohortCode string `json:"cohort_code"`
	CohortName string `json:"cohort_name"`

	CohortProgramStart      time.Time `json:"cohort_program_start"`
	CohortProgramMonths     int16     `json:"cohort_program_months"`
	CohortNumberOfSemesters int16     `json:"cohort_number_of_semesters"`

	CohortCreatedAt time.Time  `json:"cohort_created_at"`
	CohortUpdatedAt *time.Time `json:"cohort_updated_at,omitempty"`
}

func FromModel(x m.CohortModel) CohortResponse {
	return CohortResponse{
		CohortID:                x.CohortID,
		CohortCode:              x.CohortCode,
		CohortName:              x.CohortName,
		CohortProgramStart:      x.CohortProgramStart,
		CohortProgramMonths:     x.CohortProgramMonths,
		CohortNumberOfSemesters: x.CohortNumberOfSemesters,
		CohortCreatedAt:         x.CohortCreatedAt,
		CohortUpdatedAt:         x.CohortUpdatedAt,
	}
}

func FromModels(list []m.CohortModel) []CohortResponse {
	out := make([]CohortResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
