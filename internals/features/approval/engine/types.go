package engine

import (
	"github.com/google/uuid"

	"nssportal_backend/internals/constants"
)

// Principal is the authenticated caller, resolved once per request from a
// verified token. It is passed explicitly into every check; the engine keeps
// no ambient session state.
type Principal struct {
	UserID       uuid.UUID
	Role         constants.Role
	DepartmentID *uuid.UUID // required for PO/SC, nil for PC
}

// EntityKind names the four record kinds the engine rules over.
type EntityKind string

const (
	KindVolunteer    EntityKind = "volunteer"
	KindWorkingHours EntityKind = "working_hours"
	KindEvent        EntityKind = "event"
	KindEventReport  EntityKind = "event_report"
)

// Action is a request-level verb against a single entity.
type Action string

const (
	ActionList    Action = "list"
	ActionSubmit  Action = "submit"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Status is the shared approval state for WorkingHoursEntry and EventReport.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus accepts only the closed status set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Target is the request-local snapshot of the row an action runs against.
// Controllers build it from the loaded model; the engine never reaches back
// into the store during a check.
type Target struct {
	Kind         EntityKind
	ID           uuid.UUID
	OwnerID      uuid.UUID
	DepartmentID uuid.UUID
	Status       Status // zero value for Volunteer/Event (no approval state)
}
