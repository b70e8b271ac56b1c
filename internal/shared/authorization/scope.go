package authorization

// Scope is the visibility restriction derived from a caller's role and
// school affiliations. It is applied identically to school, asset, and
// ticket listings, parameterized only by the column holding the school
// reference.
type Scope struct {
	unrestricted bool
	schoolIDs    []uint
}

// UnrestrictedScope sees all rows.
func UnrestrictedScope() Scope {
	return Scope{unrestricted: true}
}

// SchoolScope sees only rows whose school reference is in ids. An empty id
// set matches no rows, never all rows.
func SchoolScope(ids []uint) Scope {
	out := make([]uint, len(ids))
	copy(out, ids)
	return Scope{schoolIDs: out}
}

// ScopedUser is the slice of a user the scope derivation needs: its role and
// its two school affiliation sets, already normalized to numeric IDs.
type ScopedUser interface {
	Role() Role
	SchoolIDs() []uint
	AssignedSchoolIDs() []uint
}

// ScopeForUser derives the visibility restriction for a caller.
// super_admin is unrestricted; admin is limited to its assigned schools;
// school_admin to its own schools. Lower roles never reach the query layer,
// they are rejected by the authorization middleware, so they get an empty
// scope here as a backstop.
func ScopeForUser(u ScopedUser) Scope {
	switch u.Role() {
	case RoleSuperAdmin:
		return UnrestrictedScope()
	case RoleAdmin:
		return SchoolScope(u.AssignedSchoolIDs())
	case RoleSchoolAdmin:
		return SchoolScope(u.SchoolIDs())
	default:
		return SchoolScope(nil)
	}
}

// Unrestricted reports whether the scope sees all rows.
func (s Scope) Unrestricted() bool {
	return s.unrestricted
}

// SchoolIDs returns the school IDs the scope is limited to.
func (s Scope) SchoolIDs() []uint {
	out := make([]uint, len(s.schoolIDs))
	copy(out, s.schoolIDs)
	return out
}

// Allows reports whether the scope covers the given school.
func (s Scope) Allows(schoolID uint) bool {
	if s.unrestricted {
		return true
	}
	for _, id := range s.schoolIDs {
		if id == schoolID {
			return true
		}
	}
	return false
}
