package dto

import (
	"strings"

	dModel "nssportal_backend/internals/features/departments/model"
)

type CreateDepartmentRequest struct {
	DepartmentCode      string `json:"department_code" validate:"required,min=2,max=10"`
	DepartmentName      string `json:"department_name" validate:"required,min=2,max=100"`
	DepartmentInstitute string `json:"department_institute" validate:"omitempty,max=100"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.DepartmentCode = strings.ToUpper(strings.TrimSpace(r.DepartmentCode))
	r.DepartmentName = strings.TrimSpace(r.DepartmentName)
	r.DepartmentInstitute = strings.TrimSpace(r.DepartmentInstitute)
}

func (r *CreateDepartmentRequest) ToModel() *dModel.DepartmentModel {
	return &dModel.DepartmentModel{
		DepartmentCode:      r.DepartmentCode,
		DepartmentName:      r.DepartmentName,
		DepartmentInstitute: r.DepartmentInstitute,
	}
}

type UpdateDepartmentRequest struct {
	DepartmentName      *string `json:"department_name,omitempty" validate:"omitempty,min=2,max=100"`
	DepartmentInstitute *string `json:"department_institute,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateDepartmentRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.DepartmentName != nil {
		updates["department_name"] = strings.TrimSpace(*r.DepartmentName)
	}
	if r.DepartmentInstitute != nil {
		updates["department_institute"] = strings.TrimSpace(*r.DepartmentInstitute)
	}
	return updates
}
