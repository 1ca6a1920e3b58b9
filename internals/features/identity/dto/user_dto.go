package dto

import (
	"strings"

	"github.com/google/uuid"

	uModel "nssportal_backend/internals/features/identity/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterRequest — role is the closed enum; department is required for
// PO/SC accounts and must be absent for the PC.
type RegisterRequest struct {
	UserName     string  `json:"user_name" validate:"required,min=3,max=100"`
	Email        string  `json:"user_email" validate:"required,email,max=255"`
	Password     string  `json:"user_password" validate:"required,min=8"`
	Role         string  `json:"user_role" validate:"required,oneof=pc po sc"`
	DepartmentID *string `json:"user_department_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

func (r *RegisterRequest) ToModel() (*uModel.UserModel, error) {
	m := &uModel.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password, // hashed in the service
		Role:     r.Role,
		IsActive: true,
	}
	if r.DepartmentID != nil && *r.DepartmentID != "" {
		id, err := uuid.Parse(*r.DepartmentID)
		if err != nil {
			return nil, err
		}
		m.DepartmentID = &id
	}
	return m, nil
}

type LoginRequest struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	Email        string     `json:"user_email"`
	Role         string     `json:"user_role"`
	DepartmentID *uuid.UUID `json:"user_department_id,omitempty"`
	IsActive     bool       `json:"user_is_active"`
}

func FromUserModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.ID,
		UserName:     m.UserName,
		Email:        m.Email,
		Role:         m.Role,
		DepartmentID: m.DepartmentID,
		IsActive:     m.IsActive,
	}
}
