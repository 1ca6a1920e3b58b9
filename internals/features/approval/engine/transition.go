package engine

import (
	"nssportal_backend/internals/constants"
)

// CheckTransition enforces the legal-change table for an action against a
// target row. Visibility must already have been established; this check only
// answers whether the principal may cause this particular change from the
// row's current state.
func CheckTransition(p Principal, action Action, t Target) error {
	switch t.Kind {
	case KindWorkingHours:
		return checkWorkingHours(p, action, t)
	case KindEventReport:
		return checkEventReport(p, action, t)
	case KindVolunteer:
		return checkVolunteer(p, action, t)
	case KindEvent:
		return checkEvent(p, action, t)
	default:
		return ErrNotFound
	}
}

func checkWorkingHours(p Principal, action Action, t Target) error {
	switch action {
	case ActionApprove, ActionReject:
		// only a PO of the same department, and only out of pending
		if p.Role != constants.RolePO {
			return Denied(action, t.Kind, ReasonRoleMismatch)
		}
		if p.DepartmentID == nil {
			return ErrDepartmentUnresolved
		}
		if *p.DepartmentID != t.DepartmentID {
			return Denied(action, t.Kind, ReasonDepartmentMismatch)
		}
		if t.Status != StatusPending {
			return Denied(action, t.Kind, ReasonTerminalState)
		}
		return nil

	case ActionEdit:
		// owner only, and only while still pending; a rejected entry is
		// deleted and resubmitted, never edited back into review
		if t.OwnerID != p.UserID {
			return Denied(action, t.Kind, ReasonNotOwner)
		}
		if t.Status != StatusPending {
			return Denied(action, t.Kind, ReasonTerminalState)
		}
		return nil

	case ActionDelete:
		// owner only; approved entries are frozen for everyone
		if t.OwnerID != p.UserID {
			return Denied(action, t.Kind, ReasonNotOwner)
		}
		if t.Status == StatusApproved {
			return Denied(action, t.Kind, ReasonTerminalState)
		}
		return nil

	case ActionSubmit:
		if p.Role != constants.RoleSC {
			return Denied(action, t.Kind, ReasonRoleMismatch)
		}
		return nil
	}
	return Denied(action, t.Kind, ReasonRoleMismatch)
}

func checkEventReport(p Principal, action Action, t Target) error {
	switch action {
	case ActionApprove, ActionReject:
		if p.Role != constants.RolePO {
			return Denied(action, t.Kind, ReasonRoleMismatch)
		}
		if p.DepartmentID == nil {
			return ErrDepartmentUnresolved
		}
		if *p.DepartmentID != t.DepartmentID {
			return Denied(action, t.Kind, ReasonDepartmentMismatch)
		}
		if t.Status != StatusPending {
			return Denied(action, t.Kind, ReasonTerminalState)
		}
		return nil

	case ActionDelete:
		// owner only, while pending or rejected; an approved report is immutable
		if t.OwnerID != p.UserID {
			return Denied(action, t.Kind, ReasonNotOwner)
		}
		if t.Status == StatusApproved {
			return Denied(action, t.Kind, ReasonTerminalState)
		}
		return nil

	case ActionSubmit:
		// duplicate (event, submitter) pairs are caught by the unique
		// constraint at insert time, not by a read-then-write check here
		if p.Role != constants.RoleSC {
			return Denied(action, t.Kind, ReasonRoleMismatch)
		}
		return nil
	}
	return Denied(action, t.Kind, ReasonRoleMismatch)
}

// Volunteer records carry no approval state; the machine still answers who
// may mutate them: the creator or a higher role over the same department.
func checkVolunteer(p Principal, action Action, t Target) error {
	switch action {
	case ActionSubmit:
		return nil // any authenticated role may add volunteers
	case ActionEdit, ActionDelete:
		switch p.Role {
		case constants.RolePC:
			return nil
		case constants.RolePO:
			if p.DepartmentID == nil {
				return ErrDepartmentUnresolved
			}
			if *p.DepartmentID != t.DepartmentID {
				return Denied(action, t.Kind, ReasonDepartmentMismatch)
			}
			return nil
		case constants.RoleSC:
			if t.OwnerID != p.UserID {
				return Denied(action, t.Kind, ReasonNotOwner)
			}
			return nil
		}
	}
	return Denied(action, t.Kind, ReasonRoleMismatch)
}

// Events are managed by the PC or the owning department's PO. Their status
// (upcoming/completed) is derived from the date and never part of a transition.
func checkEvent(p Principal, action Action, t Target) error {
	switch action {
	case ActionSubmit, ActionEdit, ActionDelete:
		switch p.Role {
		case constants.RolePC:
			return nil
		case constants.RolePO:
			if p.DepartmentID == nil {
				return ErrDepartmentUnresolved
			}
			if *p.DepartmentID != t.DepartmentID {
				return Denied(action, t.Kind, ReasonDepartmentMismatch)
			}
			return nil
		}
	}
	return Denied(action, t.Kind, ReasonRoleMismatch)
}
