package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Admin@Example.EDU", "Dana Cole", "hash", authorization.RoleAdmin, nil, []uint{1, 2})
	require.NoError(t, err)

	assert.Equal(t, "admin@example.edu", u.Email())
	assert.Equal(t, authorization.RoleAdmin, u.Role())
	assert.Equal(t, StatusActive, u.Status())
	assert.Empty(t, u.SchoolIDs())
	assert.Equal(t, []uint{1, 2}, u.AssignedSchoolIDs())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		email string
		uname string
		hash  string
		role  authorization.Role
	}{
		{name: "empty email", email: "", uname: "n", hash: "h", role: authorization.RoleAdmin},
		{name: "malformed email", email: "nope", uname: "n", hash: "h", role: authorization.RoleAdmin},
		{name: "empty name", email: "a@b.c", uname: "", hash: "h", role: authorization.RoleAdmin},
		{name: "empty hash", email: "a@b.c", uname: "n", hash: "", role: authorization.RoleAdmin},
		{name: "unknown role", email: "a@b.c", uname: "n", hash: "h", role: authorization.Role("boss")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.uname, tt.hash, tt.role, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeIDs(t *testing.T) {
	u, err := NewUser("a@b.c", "n", "h", authorization.RoleSchoolAdmin, []uint{3, 0, 3, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 1}, u.SchoolIDs())
}

func TestUser_RecordLogin(t *testing.T) {
	u, err := NewUser("a@b.c", "n", "h", authorization.RoleTechnician, nil, nil)
	require.NoError(t, err)

	at := time.Now()
	u.RecordLogin(at)
	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, at, *u.LastLoginAt())
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("a@b.c", "n", "h", authorization.RoleSchoolUser, nil, nil)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleSchoolAdmin))
	assert.Equal(t, authorization.RoleSchoolAdmin, u.Role())
	assert.Error(t, u.ChangeRole(authorization.Role("owner")))
}

func TestUser_ScopedUserContract(t *testing.T) {
	u, err := NewUser("a@b.c", "n", "h", authorization.RoleSchoolAdmin, []uint{5}, nil)
	require.NoError(t, err)

	scope := authorization.ScopeForUser(u)
	assert.False(t, scope.Unrestricted())
	assert.True(t, scope.Allows(5))
	assert.False(t, scope.Allows(6))
}
