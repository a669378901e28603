package dto

import (
	"github.com/google/uuid"

	m "campushq_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

/* =============== RESPONSES =============== */

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	UserInstituteID uuid.UUID  `json:"user_institute_id"`
	UserFullName    string     `json:"user_full_name"`
	UserEmail       string     `json:"user_email"`
	UserRole        string     `json:"user_role"`
	UserStudentID   *uuid.UUID `json:"user_student_id,omitempty"`
}

func FromModel(x m.UserModel) UserResponse {
	return UserResponse{
		UserID:          x.UserID,
		UserInstituteID: x.UserInstituteID,
		UserFullName:    x.UserFullName,
		UserEmail:       x.UserEmail,
		UserRole:        x.UserRole,
		UserStudentID:   x.UserStudentID,
	}
}
