package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nssportal_backend/internals/constants"
)

func deniedWith(t *testing.T, err error, reason DeniedReason) {
	t.Helper()
	td, ok := IsTransitionDenied(err)
	require.True(t, ok, "want TransitionDeniedError, got %v", err)
	assert.Equal(t, reason, td.Reason)
}

func officer(dept uuid.UUID) Principal {
	return Principal{UserID: uuid.New(), Role: constants.RolePO, DepartmentID: &dept}
}

func student() Principal {
	dept := uuid.New()
	return Principal{UserID: uuid.New(), Role: constants.RoleSC, DepartmentID: &dept}
}

// ===== Working hours =====

func TestWorkingHoursApproveByDepartmentOfficer(t *testing.T) {
	dept := uuid.New()
	po := officer(dept)
	entry := Target{Kind: KindWorkingHours, ID: uuid.New(), OwnerID: uuid.New(), DepartmentID: dept, Status: StatusPending}

	assert.NoError(t, CheckTransition(po, ActionApprove, entry))
	assert.NoError(t, CheckTransition(po, ActionReject, entry))
}

func TestWorkingHoursApproveDeniedByRole(t *testing.T) {
	dept := uuid.New()
	entry := Target{Kind: KindWorkingHours, DepartmentID: dept, Status: StatusPending}

	pc := Principal{UserID: uuid.New(), Role: constants.RolePC}
	deniedWith(t, CheckTransition(pc, ActionApprove, entry), ReasonRoleMismatch)

	sc := student()
	deniedWith(t, CheckTransition(sc, ActionApprove, entry), ReasonRoleMismatch)
}

func TestWorkingHoursApproveDeniedCrossDepartment(t *testing.T) {
	entry := Target{Kind: KindWorkingHours, DepartmentID: uuid.New(), Status: StatusPending}
	po := officer(uuid.New())

	deniedWith(t, CheckTransition(po, ActionApprove, entry), ReasonDepartmentMismatch)
}

func TestWorkingHoursSecondDecisionDenied(t *testing.T) {
	dept := uuid.New()
	po := officer(dept)

	approved := Target{Kind: KindWorkingHours, DepartmentID: dept, Status: StatusApproved}
	deniedWith(t, CheckTransition(po, ActionApprove, approved), ReasonTerminalState)
	deniedWith(t, CheckTransition(po, ActionReject, approved), ReasonTerminalState)

	rejected := Target{Kind: KindWorkingHours, DepartmentID: dept, Status: StatusRejected}
	deniedWith(t, CheckTransition(po, ActionApprove, rejected), ReasonTerminalState)
}

func TestWorkingHoursEditOwnerWhilePending(t *testing.T) {
	sc := student()
	mine := Target{Kind: KindWorkingHours, OwnerID: sc.UserID, DepartmentID: *sc.DepartmentID, Status: StatusPending}
	assert.NoError(t, CheckTransition(sc, ActionEdit, mine))

	// rejected entries are resubmitted, never edited back into review
	mine.Status = StatusRejected
	deniedWith(t, CheckTransition(sc, ActionEdit, mine), ReasonTerminalState)

	mine.Status = StatusApproved
	deniedWith(t, CheckTransition(sc, ActionEdit, mine), ReasonTerminalState)

	theirs := Target{Kind: KindWorkingHours, OwnerID: uuid.New(), Status: StatusPending}
	deniedWith(t, CheckTransition(sc, ActionEdit, theirs), ReasonNotOwner)
}

func TestWorkingHoursDeleteRules(t *testing.T) {
	sc := student()

	pending := Target{Kind: KindWorkingHours, OwnerID: sc.UserID, Status: StatusPending}
	assert.NoError(t, CheckTransition(sc, ActionDelete, pending))

	rejected := Target{Kind: KindWorkingHours, OwnerID: sc.UserID, Status: StatusRejected}
	assert.NoError(t, CheckTransition(sc, ActionDelete, rejected))

	// approved rows are frozen for everyone, including the owner
	approved := Target{Kind: KindWorkingHours, OwnerID: sc.UserID, Status: StatusApproved}
	deniedWith(t, CheckTransition(sc, ActionDelete, approved), ReasonTerminalState)
}

func TestWorkingHoursSubmitStudentOnly(t *testing.T) {
	entry := Target{Kind: KindWorkingHours}

	assert.NoError(t, CheckTransition(student(), ActionSubmit, entry))
	deniedWith(t, CheckTransition(officer(uuid.New()), ActionSubmit, entry), ReasonRoleMismatch)
}

// ===== Event reports =====

func TestEventReportDecisionMirrorsWorkingHours(t *testing.T) {
	dept := uuid.New()
	po := officer(dept)

	pending := Target{Kind: KindEventReport, DepartmentID: dept, Status: StatusPending}
	assert.NoError(t, CheckTransition(po, ActionApprove, pending))

	cross := Target{Kind: KindEventReport, DepartmentID: uuid.New(), Status: StatusPending}
	deniedWith(t, CheckTransition(po, ActionApprove, cross), ReasonDepartmentMismatch)

	approved := Target{Kind: KindEventReport, DepartmentID: dept, Status: StatusApproved}
	deniedWith(t, CheckTransition(po, ActionReject, approved), ReasonTerminalState)
}

func TestEventReportDeleteAndResubmitFlow(t *testing.T) {
	sc := student()

	rejected := Target{Kind: KindEventReport, OwnerID: sc.UserID, Status: StatusRejected}
	assert.NoError(t, CheckTransition(sc, ActionDelete, rejected))

	approved := Target{Kind: KindEventReport, OwnerID: sc.UserID, Status: StatusApproved}
	deniedWith(t, CheckTransition(sc, ActionDelete, approved), ReasonTerminalState)

	theirs := Target{Kind: KindEventReport, OwnerID: uuid.New(), Status: StatusPending}
	deniedWith(t, CheckTransition(sc, ActionDelete, theirs), ReasonNotOwner)
}

// ===== Volunteers =====

func TestVolunteerMutationByRole(t *testing.T) {
	dept := uuid.New()
	row := Target{Kind: KindVolunteer, OwnerID: uuid.New(), DepartmentID: dept}

	pc := Principal{UserID: uuid.New(), Role: constants.RolePC}
	assert.NoError(t, CheckTransition(pc, ActionEdit, row))
	assert.NoError(t, CheckTransition(pc, ActionDelete, row))

	assert.NoError(t, CheckTransition(officer(dept), ActionEdit, row))
	deniedWith(t, CheckTransition(officer(uuid.New()), ActionEdit, row), ReasonDepartmentMismatch)

	sc := student()
	deniedWith(t, CheckTransition(sc, ActionDelete, row), ReasonNotOwner)

	own := Target{Kind: KindVolunteer, OwnerID: sc.UserID, DepartmentID: dept}
	assert.NoError(t, CheckTransition(sc, ActionEdit, own))
}

// ===== Events =====

func TestEventManagementByRole(t *testing.T) {
	dept := uuid.New()
	ev := Target{Kind: KindEvent, OwnerID: uuid.New(), DepartmentID: dept}

	pc := Principal{UserID: uuid.New(), Role: constants.RolePC}
	assert.NoError(t, CheckTransition(pc, ActionSubmit, ev))

	assert.NoError(t, CheckTransition(officer(dept), ActionEdit, ev))
	deniedWith(t, CheckTransition(officer(uuid.New()), ActionDelete, ev), ReasonDepartmentMismatch)

	// students never manage events, even ones owned by them
	sc := student()
	own := Target{Kind: KindEvent, OwnerID: sc.UserID, DepartmentID: dept}
	deniedWith(t, CheckTransition(sc, ActionEdit, own), ReasonRoleMismatch)
}
