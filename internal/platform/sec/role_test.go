// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamtuan/vitalog/internal/platform/sec"
)

/*
TestRoleFor verifies the mapping from the account admin flag to the token
role claim.
*/
func TestRoleFor(t *testing.T) {
	assert.Equal(t, sec.RoleAdmin, sec.RoleFor(true))
	assert.Equal(t, sec.RoleMember, sec.RoleFor(false))
}

/*
TestUserRole_AtLeast verifies the role hierarchy comparison.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_member", sec.RoleAdmin, sec.RoleMember, true},
		{"member_below_admin", sec.RoleMember, sec.RoleAdmin, false},
		{"member_meets_member", sec.RoleMember, sec.RoleMember, true},
		{"unknown_below_member", sec.UserRole("ghost"), sec.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}
