// Package authorization implements the role hierarchy and the school-scoped
// visibility rules applied across list and detail endpoints.
package authorization

// Role identifies a user's role. Every user has exactly one role, and each
// role maps to a numeric privilege level used for threshold checks.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleSchoolAdmin Role = "school_admin"
	RoleTechnician  Role = "technician"
	RoleSchoolUser  Role = "school_user"
	RoleVendor      Role = "vendor"
)

var privilegeLevels = map[Role]int{
	RoleSuperAdmin:  5,
	RoleAdmin:       4,
	RoleSchoolAdmin: 3,
	RoleTechnician:  2,
	RoleSchoolUser:  1,
	RoleVendor:      1,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := privilegeLevels[r]
	return ok
}

// PrivilegeLevel returns the numeric rank of the role. Unknown roles rank 0
// and therefore never pass any threshold check.
func (r Role) PrivilegeLevel() int {
	return privilegeLevels[r]
}

func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

func (r Role) IsAdminLevel() bool {
	return r.PrivilegeLevel() >= privilegeLevels[RoleAdmin]
}

// ParseRole returns the role for s, or false when s names no known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// Authorize reports whether role satisfies the requirement list. The check is
// a threshold over the privilege hierarchy, not set membership: the caller
// passes when its level is at least the LOWEST level among the required
// roles. A requirement of {school_admin, admin} therefore admits any role of
// level 3 or above.
func Authorize(role Role, required ...Role) bool {
	if len(required) == 0 {
		return role.IsValid()
	}

	minLevel := 0
	for i, r := range required {
		level := r.PrivilegeLevel()
		if i == 0 || level < minLevel {
			minLevel = level
		}
	}

	return role.PrivilegeLevel() >= minLevel
}
