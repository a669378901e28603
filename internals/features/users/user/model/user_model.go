package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserInstituteID uuid.UUID `gorm:"column:user_institute_id;type:uuid;not null;index" json:"user_institute_id"`

	UserFullName     string `gorm:"column:user_full_name;type:text;not null" json:"user_full_name"`
	UserEmail        string `gorm:"column:user_email;type:text;not null;uniqueIndex" json:"user_email"`
	UserPasswordHash string `gorm:"column:user_password_hash;type:text;not null" json:"-"`
	UserRole         string `gorm:"column:user_role;type:text;not null;default:student" json:"user_role"`

	// set when the user is a student account
	UserStudentID *uuid.UUID `gorm:"column:user_student_id;type:uuid" json:"user_student_id,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
