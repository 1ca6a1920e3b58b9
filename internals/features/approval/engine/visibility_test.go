package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nssportal_backend/internals/constants"
)

func TestCanSeeCoordinatorSeesEverything(t *testing.T) {
	pc := Principal{UserID: uuid.New(), Role: constants.RolePC}

	for _, kind := range []EntityKind{KindVolunteer, KindWorkingHours, KindEvent, KindEventReport} {
		target := Target{Kind: kind, ID: uuid.New(), OwnerID: uuid.New(), DepartmentID: uuid.New()}
		ok, err := CanSee(pc, target, uuid.Nil)
		require.NoError(t, err)
		assert.True(t, ok, "PC should see every %s row", kind)
	}
}

func TestCanSeeOfficerScopedToDepartment(t *testing.T) {
	dept := uuid.New()
	otherDept := uuid.New()
	po := Principal{UserID: uuid.New(), Role: constants.RolePO, DepartmentID: &dept}

	ok, err := CanSee(po, Target{Kind: KindWorkingHours, DepartmentID: dept}, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanSee(po, Target{Kind: KindWorkingHours, DepartmentID: otherDept}, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, ok, "row in another department must be invisible, not merely frozen")
}

func TestCanSeeOfficerWithoutDepartmentFails(t *testing.T) {
	po := Principal{UserID: uuid.New(), Role: constants.RolePO, DepartmentID: nil}

	_, err := CanSee(po, Target{Kind: KindWorkingHours, DepartmentID: uuid.New()}, uuid.Nil)
	assert.ErrorIs(t, err, ErrDepartmentUnresolved)
}

func TestCanSeeStudentOwnRowsOnly(t *testing.T) {
	sc := Principal{UserID: uuid.New(), Role: constants.RoleSC}

	ok, err := CanSee(sc, Target{Kind: KindWorkingHours, OwnerID: sc.UserID}, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanSee(sc, Target{Kind: KindWorkingHours, OwnerID: uuid.New()}, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// reports follow ownership too
	ok, err = CanSee(sc, Target{Kind: KindEventReport, OwnerID: uuid.New()}, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanSeeStudentBrowsesReferenceDepartment(t *testing.T) {
	browse := uuid.New()
	sc := Principal{UserID: uuid.New(), Role: constants.RoleSC}

	// volunteer and event listings follow the reference department, not ownership
	for _, kind := range []EntityKind{KindVolunteer, KindEvent} {
		ok, err := CanSee(sc, Target{Kind: kind, OwnerID: uuid.New(), DepartmentID: browse}, browse)
		require.NoError(t, err)
		assert.True(t, ok, "%s in the reference department should be browsable", kind)

		ok, err = CanSee(sc, Target{Kind: kind, OwnerID: sc.UserID, DepartmentID: uuid.New()}, browse)
		require.NoError(t, err)
		assert.False(t, ok, "own %s outside the reference department is not browsable", kind)
	}

	// unresolved reference department fails closed
	ok, err := CanSee(sc, Target{Kind: KindEvent, DepartmentID: browse}, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanSeeUnknownRoleFailsClosed(t *testing.T) {
	ghost := Principal{UserID: uuid.New(), Role: constants.Role("superadmin")}

	ok, err := CanSee(ghost, Target{Kind: KindVolunteer, OwnerID: ghost.UserID, DepartmentID: uuid.New()}, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVisibleRowsFilters(t *testing.T) {
	dept := uuid.New()
	po := Principal{UserID: uuid.New(), Role: constants.RolePO, DepartmentID: &dept}

	mine := Target{Kind: KindWorkingHours, ID: uuid.New(), DepartmentID: dept}
	other := Target{Kind: KindWorkingHours, ID: uuid.New(), DepartmentID: uuid.New()}

	out, err := VisibleRows(po, []Target{mine, other, mine}, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, mine.ID, out[0].ID)
	assert.Equal(t, mine.ID, out[1].ID)
}

func TestScopeErrorCases(t *testing.T) {
	po := Principal{UserID: uuid.New(), Role: constants.RolePO, DepartmentID: nil}
	_, err := Scope(po, KindVolunteer, uuid.Nil)
	assert.ErrorIs(t, err, ErrDepartmentUnresolved)

	pc := Principal{UserID: uuid.New(), Role: constants.RolePC}
	_, err = Scope(pc, EntityKind("bogus"), uuid.Nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
