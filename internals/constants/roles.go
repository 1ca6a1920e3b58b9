package constants

import (
	"fmt"
	"strings"
)

// Role is the closed role enum. Every request resolves its role into one of
// these exactly once (at login / token parse); downstream logic switches on
// the enum only, never on raw strings.
type Role string

const (
	RolePC Role = "pc" // Program Coordinator — organization-wide oversight
	RolePO Role = "po" // Program Officer — one department
	RoleSC Role = "sc" // Student Coordinator — individual contributor
)

func (r Role) String() string { return string(r) }

// ParseRole maps the loose role spellings found in older data
// ("PO", "Program Officer", "po") onto the enum. Unknown input fails.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pc", "program coordinator":
		return RolePC, true
	case "po", "program officer":
		return RolePO, true
	case "sc", "student coordinator":
		return RoleSC, true
	default:
		return "", false
	}
}

// Role error message templates
const (
	ErrOnlyCoordinatorCanAccess = "❌ Only the Program Coordinator may access %s."
	ErrOnlyOfficersCanAccess    = "❌ Only a Program Officer or the Program Coordinator may access %s."
	ErrOnlyStudentsCanAccess    = "❌ Only a Student Coordinator may access %s."
)

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorCanAccess, feature)
}

func RoleErrorOfficer(feature string) string {
	return fmt.Sprintf(ErrOnlyOfficersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RolePC,
		RolePO,
		RoleSC,
	}

	OfficerAndAbove = []Role{
		RolePO,
		RolePC,
	}

	CoordinatorOnly = []Role{
		RolePC,
	}

	StudentOnly = []Role{
		RoleSC,
	}
)

// RoleStrings converts a role group for middleware that matches on strings.
func RoleStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
