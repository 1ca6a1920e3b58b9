package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nssportal_backend/internals/constants"
)

// Authorize only reaches the DB for SC browse-scoped kinds, so these cases
// run against a nil handle.

func TestAuthorizeChecksVisibilityBeforeTransition(t *testing.T) {
	e := New(nil)
	po := officer(uuid.New())

	// a pending entry in another department: the PO must get the visibility
	// failure, never a transition denial that would reveal the row's status
	foreign := Target{Kind: KindWorkingHours, ID: uuid.New(), DepartmentID: uuid.New(), Status: StatusPending}
	err := e.Authorize(context.Background(), po, ActionApprove, foreign)
	assert.ErrorIs(t, err, ErrForbidden)
	_, denied := IsTransitionDenied(err)
	assert.False(t, denied)
}

func TestAuthorizeReportsTransitionFailureWhenVisible(t *testing.T) {
	e := New(nil)
	dept := uuid.New()
	po := officer(dept)

	approved := Target{Kind: KindWorkingHours, ID: uuid.New(), DepartmentID: dept, Status: StatusApproved}
	err := e.Authorize(context.Background(), po, ActionApprove, approved)
	td, ok := IsTransitionDenied(err)
	require.True(t, ok)
	assert.Equal(t, ReasonTerminalState, td.Reason)
}

func TestAuthorizeUnknownRoleForbidden(t *testing.T) {
	e := New(nil)
	ghost := Principal{UserID: uuid.New(), Role: constants.Role("auditor")}

	target := Target{Kind: KindWorkingHours, ID: uuid.New(), OwnerID: ghost.UserID, Status: StatusPending}
	err := e.Authorize(context.Background(), ghost, ActionDelete, target)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeOfficerWithoutDepartment(t *testing.T) {
	e := New(nil)
	po := Principal{UserID: uuid.New(), Role: constants.RolePO}

	target := Target{Kind: KindWorkingHours, ID: uuid.New(), DepartmentID: uuid.New(), Status: StatusPending}
	err := e.Authorize(context.Background(), po, ActionApprove, target)
	assert.ErrorIs(t, err, ErrDepartmentUnresolved)
}
