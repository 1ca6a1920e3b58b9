package engine

import (
	"errors"
	"fmt"
)

// Failure taxonomy. NotFound and Forbidden are distinguished internally but
// collapse to the same HTTP surface so a caller can never learn that a row
// outside their scope exists.
var (
	ErrUnauthenticated      = errors.New("unauthenticated: missing or expired credential")
	ErrNotFound             = errors.New("record not found")
	ErrForbidden            = errors.New("record not visible to principal")
	ErrDepartmentUnresolved = errors.New("principal department could not be resolved")
)

// DeniedReason is the specific rule a transition violated.
type DeniedReason string

const (
	ReasonRoleMismatch        DeniedReason = "role_mismatch"
	ReasonDepartmentMismatch  DeniedReason = "department_mismatch"
	ReasonTerminalState       DeniedReason = "terminal_state"
	ReasonNotOwner            DeniedReason = "not_owner"
	ReasonDuplicateSubmission DeniedReason = "duplicate_submission"
)

// TransitionDeniedError reports an illegal status transition. It is always
// surfaced with its reason, never swallowed.
type TransitionDeniedError struct {
	Action Action
	Kind   EntityKind
	Reason DeniedReason
}

func (e *TransitionDeniedError) Error() string {
	return fmt.Sprintf("transition denied: %s on %s (%s)", e.Action, e.Kind, e.Reason)
}

func Denied(action Action, kind EntityKind, reason DeniedReason) error {
	return &TransitionDeniedError{Action: action, Kind: kind, Reason: reason}
}

// IsTransitionDenied unwraps a TransitionDeniedError if err carries one.
func IsTransitionDenied(err error) (*TransitionDeniedError, bool) {
	var td *TransitionDeniedError
	if errors.As(err, &td) {
		return td, true
	}
	return nil, false
}

// IsDuplicateSubmission reports whether err is the duplicate-report case.
func IsDuplicateSubmission(err error) bool {
	td, ok := IsTransitionDenied(err)
	return ok && td.Reason == ReasonDuplicateSubmission
}
