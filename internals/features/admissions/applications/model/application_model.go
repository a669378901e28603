package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationDraft       ApplicationStatus = "draft"
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationEnrolled    ApplicationStatus = "enrolled"
)

// allowedTransitions is the application state machine. rejected is terminal;
// enrolled only follows accepted.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationDraft:       {ApplicationSubmitted},
	ApplicationSubmitted:   {ApplicationUnderReview},
	ApplicationUnderReview: {ApplicationAccepted, ApplicationRejected},
	ApplicationAccepted:    {ApplicationEnrolled, ApplicationRejected},
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type ApplicationModel struct {
	ApplicationID uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`

	ApplicationInstituteID uuid.UUID  `gorm:"column:application_institute_id;type:uuid;not null;index" json:"application_institute_id"`
	ApplicationCohortID    *uuid.UUID `gorm:"column:application_cohort_id;type:uuid" json:"application_cohort_id,omitempty"`

	ApplicationApplicantName  string  `gorm:"column:application_applicant_name;type:text;not null" json:"application_applicant_name"`
	ApplicationApplicantEmail string  `gorm:"column:application_applicant_email;type:text;not null" json:"application_applicant_email"`
	ApplicationApplicantPhone *string `gorm:"column:application_applicant_phone;type:text" json:"application_applicant_phone,omitempty"`

	ApplicationStatus ApplicationStatus `gorm:"column:application_status;type:text;not null;default:draft" json:"application_status"`
	ApplicationNote   *string           `gorm:"column:application_note;type:text" json:"application_note,omitempty"`

	ApplicationSubmittedAt *time.Time `gorm:"column:application_submitted_at" json:"application_submitted_at,omitempty"`
	ApplicationDecidedAt   *time.Time `gorm:"column:application_decided_at" json:"application_decided_at,omitempty"`

	ApplicationCreatedAt time.Time      `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt *time.Time     `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at,omitempty"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"application_deleted_at,omitempty"`
}

func (ApplicationModel) TableName() string { return "applications" }
