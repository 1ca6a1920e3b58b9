package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	vModel "nssportal_backend/internals/features/volunteers/model"
)

type CreateVolunteerRequest struct {
	VolunteerName         string   `json:"volunteer_name" validate:"required,min=2,max=100"`
	VolunteerStudentID    string   `json:"volunteer_student_id" validate:"required,min=3,max=30"`
	VolunteerDepartmentID string   `json:"volunteer_department_id" validate:"required,uuid4"`
	VolunteerYear         int      `json:"volunteer_year" validate:"required,min=1,max=5"`
	VolunteerEmail        string   `json:"volunteer_email" validate:"omitempty,email,max=255"`
	VolunteerContact      string   `json:"volunteer_contact" validate:"omitempty,max=20"`
	VolunteerSkills       []string `json:"volunteer_skills" validate:"omitempty,dive,max=50"`
	VolunteerJoinedOn     string   `json:"volunteer_joined_on" validate:"required"` // YYYY-MM-DD
}

func (r *CreateVolunteerRequest) Normalize() {
	r.VolunteerName = strings.TrimSpace(r.VolunteerName)
	r.VolunteerStudentID = strings.ToUpper(strings.TrimSpace(r.VolunteerStudentID))
	r.VolunteerEmail = strings.TrimSpace(strings.ToLower(r.VolunteerEmail))
	r.VolunteerContact = strings.TrimSpace(r.VolunteerContact)
	for i := range r.VolunteerSkills {
		r.VolunteerSkills[i] = strings.TrimSpace(r.VolunteerSkills[i])
	}
}

func (r *CreateVolunteerRequest) ToModel(addedBy uuid.UUID) (*vModel.VolunteerModel, error) {
	deptID, err := uuid.Parse(r.VolunteerDepartmentID)
	if err != nil {
		return nil, err
	}
	joined, err := time.Parse("2006-01-02", r.VolunteerJoinedOn)
	if err != nil {
		return nil, err
	}
	return &vModel.VolunteerModel{
		VolunteerName:         r.VolunteerName,
		VolunteerStudentID:    r.VolunteerStudentID,
		VolunteerDepartmentID: deptID,
		VolunteerYear:         r.VolunteerYear,
		VolunteerEmail:        r.VolunteerEmail,
		VolunteerContact:      r.VolunteerContact,
		VolunteerSkills:       pq.StringArray(r.VolunteerSkills),
		VolunteerJoinedOn:     joined,
		VolunteerAddedBy:      addedBy,
	}, nil
}

type UpdateVolunteerRequest struct {
	VolunteerName    *string   `json:"volunteer_name,omitempty" validate:"omitempty,min=2,max=100"`
	VolunteerYear    *int      `json:"volunteer_year,omitempty" validate:"omitempty,min=1,max=5"`
	VolunteerEmail   *string   `json:"volunteer_email,omitempty" validate:"omitempty,email,max=255"`
	VolunteerContact *string   `json:"volunteer_contact,omitempty" validate:"omitempty,max=20"`
	VolunteerSkills  *[]string `json:"volunteer_skills,omitempty" validate:"omitempty,dive,max=50"`
}

func (r *UpdateVolunteerRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.VolunteerName != nil {
		updates["volunteer_name"] = strings.TrimSpace(*r.VolunteerName)
	}
	if r.VolunteerYear != nil {
		updates["volunteer_year"] = *r.VolunteerYear
	}
	if r.VolunteerEmail != nil {
		updates["volunteer_email"] = strings.TrimSpace(strings.ToLower(*r.VolunteerEmail))
	}
	if r.VolunteerContact != nil {
		updates["volunteer_contact"] = strings.TrimSpace(*r.VolunteerContact)
	}
	if r.VolunteerSkills != nil {
		updates["volunteer_skills"] = pq.StringArray(*r.VolunteerSkills)
	}
	return updates
}
