package dto

import (
	"time"

	"github.com/google/uuid"

	m "campushq_backend/internals/features/academics/epics/model"
)

type CreateEpicRequest struct {
	EpicCohortID uuid.UUID  `json:"epic_cohort_id" validate:"required"`
	EpicTitle    string     `json:"epic_title"     validate:"required,min=3"`
	EpicPosition int16      `json:"epic_position"  validate:"required,gte=1"`
	EpicStart    *time.Time `json:"epic_start"     validate:"omitempty"`
	EpicEnd      *time.Time `json:"epic_end"       validate:"omitempty,gtefield=EpicStart"`
}

func (r CreateEpicRequest) ToModel(instituteID uuid.UUID) *m.EpicModel {
	return &m.EpicModel{
		EpicInstituteID: instituteID,
		EpicCohortID:    r.EpicCohortID,
		EpicTitle:       r.EpicTitle,
		EpicPosition:    r.EpicPosition,
		EpicStart:       r.EpicStart,
		EpicEnd:         r.EpicEnd,
	}
}

type UpdateEpicRequest struct {
	EpicTitle    *string    `json:"epic_title"    validate:"omitempty,min=3"`
	EpicPosition *int16     `json:"epic_position" validate:"omitempty,gte=1"`
	EpicStart    *time.Time `json:"epic_start"    validate:"omitempty"`
	EpicEnd      *time.Time `json:"epic_end"      validate:"omitempty"`
}

func (r UpdateEpicRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.EpicTitle != nil {
		patch["epic_title"] = *r.EpicTitle
	}
	if r.EpicPosition != nil {
		patch["epic_position"] = *r.EpicPosition
	}
	if r.EpicStart != nil {
		patch["epic_start"] = *r.EpicStart
	}
	if r.EpicEnd != nil {
		patch["epic_end"] = *r.EpicEnd
	}
	return patch
}

type EpicResponse struct {
	EpicID       uuid.UUID  `json:"epic_id"`
	EpicCohortID uuid.UUID  `json:"epic_cohort_id"`
	EpicTitle    string     `json:"epic_title"`
	EpicPosition int16      `json:"epic_position"`
	EpicStart    *time.Time `json:"epic_start,omitempty"`
	EpicEnd      *time.Time `json:"epic_end,omitempty"`
	EpicCreatedAt time.Time `json:"epic_created_at"`
}

func FromModel(x m.EpicModel) EpicResponse {
	return EpicResponse{
		EpicID:        x.EpicID,
		EpicCohortID:  x.EpicCohortID,
		EpicTitle:     x.EpicTitle,
		EpicPosition:  x.EpicPosition,
		EpicStart:     x.EpicStart,
		EpicEnd:       x.EpicEnd,
		EpicCreatedAt: x.EpicCreatedAt,
	}
}

func FromModels(list []m.EpicModel) []EpicResponse {
	out := make([]EpicResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
