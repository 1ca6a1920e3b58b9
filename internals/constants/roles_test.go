package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleSpellings(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"pc", RolePC},
		{"PC", RolePC},
		{"Program Coordinator", RolePC},
		{"po", RolePO},
		{" PO ", RolePO},
		{"program officer", RolePO},
		{"sc", RoleSC},
		{"Student Coordinator", RoleSC},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		require.True(t, ok, "ParseRole(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "admin", "coordinator", "p o", "superuser"} {
		_, ok := ParseRole(in)
		assert.False(t, ok, "ParseRole(%q) should fail", in)
	}
}

func TestRoleStrings(t *testing.T) {
	assert.Equal(t, []string{"po", "pc"}, RoleStrings(OfficerAndAbove))
	assert.Empty(t, RoleStrings(nil))
}
