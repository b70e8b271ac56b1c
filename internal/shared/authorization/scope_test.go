package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scopedUser struct {
	role     Role
	schools  []uint
	assigned []uint
}

func (u scopedUser) Role() Role                { return u.role }
func (u scopedUser) SchoolIDs() []uint         { return u.schools }
func (u scopedUser) AssignedSchoolIDs() []uint { return u.assigned }

func TestScopeForUser(t *testing.T) {
	tests := []struct {
		name             string
		user             scopedUser
		wantUnrestricted bool
		wantIDs          []uint
	}{
		{
			name:             "super admin sees all",
			user:             scopedUser{role: RoleSuperAdmin},
			wantUnrestricted: true,
		},
		{
			name:    "admin limited to assigned schools",
			user:    scopedUser{role: RoleAdmin, schools: []uint{9}, assigned: []uint{1, 2}},
			wantIDs: []uint{1, 2},
		},
		{
			name:    "admin with no assignments sees nothing",
			user:    scopedUser{role: RoleAdmin},
			wantIDs: []uint{},
		},
		{
			name:    "school admin limited to owned schools",
			user:    scopedUser{role: RoleSchoolAdmin, schools: []uint{3}, assigned: []uint{7}},
			wantIDs: []uint{3},
		},
		{
			name:    "school admin with no schools sees nothing",
			user:    scopedUser{role: RoleSchoolAdmin},
			wantIDs: []uint{},
		},
		{
			name:    "technician gets empty backstop scope",
			user:    scopedUser{role: RoleTechnician, schools: []uint{1}, assigned: []uint{2}},
			wantIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ScopeForUser(tt.user)
			assert.Equal(t, tt.wantUnrestricted, scope.Unrestricted())
			if !tt.wantUnrestricted {
				assert.ElementsMatch(t, tt.wantIDs, scope.SchoolIDs())
			}
		})
	}
}

func TestScope_Allows(t *testing.T) {
	assert.True(t, UnrestrictedScope().Allows(42))

	scope := SchoolScope([]uint{1, 2})
	assert.True(t, scope.Allows(1))
	assert.True(t, scope.Allows(2))
	assert.False(t, scope.Allows(3))

	empty := SchoolScope(nil)
	assert.False(t, empty.Allows(1))
}
