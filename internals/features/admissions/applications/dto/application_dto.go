package dto

import (
	"time"

	"github.com/google/uuid"

	m "campushq_backend/internals/features/admissions/applications/model"
)

/* =============== REQUESTS =============== */

type CreateApplicationRequest struct {
	ApplicationCohortID       *uuid.UUID `json:"application_cohort_id"       validate:"omitempty"`
	ApplicationApplicantName  string     `json:"application_applicant_name"  validate:"required,min=2"`
	ApplicationApplicantEmail string     `json:"application_applicant_email" validate:"required,email"`
	ApplicationApplicantPhone *string    `json:"application_applicant_phone" validate:"omitempty,min=8,max=16"`
	ApplicationNote           *string    `json:"application_note"            validate:"omitempty"`
}

func (r CreateApplicationRequest) ToModel(instituteID uuid.UUID) *m.ApplicationModel {
	return &m.ApplicationModel{
		ApplicationInstituteID:    instituteID,
		ApplicationCohortID:       r.ApplicationCohortID,
		ApplicationApplicantName:  r.ApplicationApplicantName,
		ApplicationApplicantEmail: r.ApplicationApplicantEmail,
		ApplicationApplicantPhone: r.ApplicationApplicantPhone,
		ApplicationStatus:         m.ApplicationDraft,
		ApplicationNote:           r.ApplicationNote,
	}
}

type UpdateApplicationRequest struct {
	ApplicationCohortID       *uuid.UUID `json:"application_cohort_id"       validate:"omitempty"`
	ApplicationApplicantName  *string    `json:"application_applicant_name"  validate:"omitempty,min=2"`
	ApplicationApplicantEmail *string    `json:"application_applicant_email" validate:"omitempty,email"`
	ApplicationApplicantPhone *string    `json:"application_applicant_phone" validate:"omitempty,min=8,max=16"`
	ApplicationNote           *string    `json:"application_note"            validate:"omitempty"`
}

func (r UpdateApplicationRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.ApplicationCohortID != nil {
		patch["application_cohort_id"] = *r.ApplicationCohortID
	}
	if r.ApplicationApplicantName != nil {
		patch["application_applicant_name"] = *r.ApplicationApplicantName
	}
	if r.ApplicationApplicantEmail != nil {
		patch["application_applicant_email"] = *r.ApplicationApplicantEmail
	}
	if r.ApplicationApplicantPhone != nil {
		patch["application_applicant_phone"] = *r.ApplicationApplicantPhone
	}
	if r.ApplicationNote != nil {
		patch["application_note"] = *r.ApplicationNote
	}
	return patch
}

// TransitionRequest moves an application along the admission pipeline.
type TransitionRequest struct {
	Status m.ApplicationStatus `json:"status" validate:"required,oneof=submitted under_review accepted rejected enrolled"`
	Note   *string             `json:"note"   validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type ApplicationResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`

	ApplicationCohortID       *uuid.UUID `json:"application_cohort_id,omitempty"`
	ApplicationApplicantName  string     `json:"application_applicant_name"`
	ApplicationApplicantEmail string     `json:"application_applicant_email"`
	ApplicationApplicantPhone *string    `json:"application_applicant_phone,omitempty"`

	ApplicationStatus m.ApplicationStatus `json:"application_status"`
	ApplicationNote   *string             `json:"application_note,omitempty"`

	ApplicationSubmittedAt *time.Time `json:"application_submitted_at,omitempty"`
	ApplicationDecidedAt   *time.Time `json:"application_decided_at,omitempty"`
	ApplicationCreatedAt   time.Time  `json:"application_created_at"`
}

func FromModel(x m.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:             x.ApplicationID,
		ApplicationCohortID:       x.ApplicationCohortID,
		ApplicationApplicantName:  x.ApplicationApplicantName,
		ApplicationApplicantEmail: x.ApplicationApplicantEmail,
		ApplicationApplicantPhone: x.ApplicationApplicantPhone,
		ApplicationStatus:         x.ApplicationStatus,
		ApplicationNote:           x.ApplicationNote,
		ApplicationSubmittedAt:    x.ApplicationSubmittedAt,
		ApplicationDecidedAt:      x.ApplicationDecidedAt,
		ApplicationCreatedAt:      x.ApplicationCreatedAt,
	}
}

func FromModels(list []m.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
