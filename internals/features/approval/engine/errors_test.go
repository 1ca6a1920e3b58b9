package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsTransitionDeniedUnwrapsWrappedErrors(t *testing.T) {
	base := Denied(ActionApprove, KindWorkingHours, ReasonTerminalState)
	wrapped := fmt.Errorf("set status: %w", base)

	td, ok := IsTransitionDenied(wrapped)
	require.True(t, ok)
	assert.Equal(t, ActionApprove, td.Action)
	assert.Equal(t, ReasonTerminalState, td.Reason)

	_, ok = IsTransitionDenied(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestIsDuplicateSubmission(t *testing.T) {
	dup := Denied(ActionSubmit, KindEventReport, ReasonDuplicateSubmission)
	assert.True(t, IsDuplicateSubmission(dup))

	other := Denied(ActionSubmit, KindEventReport, ReasonRoleMismatch)
	assert.False(t, IsDuplicateSubmission(other))
	assert.False(t, IsDuplicateSubmission(nil))
}

func TestLoadErrMapsMissingRow(t *testing.T) {
	assert.ErrorIs(t, LoadErr(gorm.ErrRecordNotFound), ErrNotFound)

	boom := errors.New("connection refused")
	assert.Equal(t, boom, LoadErr(boom))
}

type fakePGErr struct{ state string }

func (e *fakePGErr) Error() string    { return "fake pg error" }
func (e *fakePGErr) SQLState() string { return e.state }

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&fakePGErr{state: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", &fakePGErr{state: "23505"})))
	assert.False(t, IsUniqueViolation(&fakePGErr{state: "40001"}))

	// string fallback for drivers that do not expose SQLState
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_report_event_submitter" (SQLSTATE 23505)`)))
	assert.False(t, IsUniqueViolation(errors.New("deadlock detected")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestActionForStatus(t *testing.T) {
	action, ok := ActionForStatus(StatusApproved)
	require.True(t, ok)
	assert.Equal(t, ActionApprove, action)

	action, ok = ActionForStatus(StatusRejected)
	require.True(t, ok)
	assert.Equal(t, ActionReject, action)

	_, ok = ActionForStatus(StatusPending)
	assert.False(t, ok, "pending is never a decision target")
}

func TestParseStatusClosedSet(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		got, ok := ParseStatus(s)
		require.True(t, ok)
		assert.Equal(t, Status(s), got)
	}
	_, ok := ParseStatus("archived")
	assert.False(t, ok)
	_, ok = ParseStatus("Approved")
	assert.False(t, ok, "status strings are case-sensitive on the wire")
}
