// Package user contains the User aggregate: a back-office identity with
// exactly one role and two school affiliation sets, the directly owned
// schools and the indirectly assigned ones.
package user

import (
	"fmt"
	"strings"
	"time"

	"campusdesk/internal/shared/authorization"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

type User struct {
	id                uint
	email             string
	name              string
	passwordHash      string
	role              authorization.Role
	schoolIDs         []uint
	assignedSchoolIDs []uint
	status            Status
	lastLoginAt       *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUser creates a user pending persistence. The password hash is produced
// by the hasher collaborator before calling this; the aggregate never sees
// plaintext material.
func NewUser(email, name, passwordHash string, role authorization.Role, schoolIDs, assignedSchoolIDs []uint) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		email:             email,
		name:              name,
		passwordHash:      passwordHash,
		role:              role,
		schoolIDs:         normalizeIDs(schoolIDs),
		assignedSchoolIDs: normalizeIDs(assignedSchoolIDs),
		status:            StatusActive,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructUser rebuilds a user from persisted state.
func ReconstructUser(
	id uint,
	email, name, passwordHash string,
	role authorization.Role,
	schoolIDs, assignedSchoolIDs []uint,
	status Status,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &User{
		id:                id,
		email:             email,
		name:              name,
		passwordHash:      passwordHash,
		role:              role,
		schoolIDs:         normalizeIDs(schoolIDs),
		assignedSchoolIDs: normalizeIDs(assignedSchoolIDs),
		status:            status,
		lastLoginAt:       lastLoginAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

// normalizeIDs copies the slice, dropping zero IDs and duplicates. School
// references always reduce to this single canonical form.
func normalizeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (u *User) ID() uint                 { return u.id }
func (u *User) Email() string            { return u.email }
func (u *User) Name() string             { return u.name }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) Status() Status           { return u.status }
func (u *User) LastLoginAt() *time.Time  { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

// SchoolIDs returns the schools the user owns directly.
func (u *User) SchoolIDs() []uint {
	out := make([]uint, len(u.schoolIDs))
	copy(out, u.schoolIDs)
	return out
}

// AssignedSchoolIDs returns the schools assigned to the user for oversight.
func (u *User) AssignedSchoolIDs() []uint {
	out := make([]uint, len(u.assignedSchoolIDs))
	copy(out, u.assignedSchoolIDs)
	return out
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// RecordLogin stamps a successful authentication.
func (u *User) RecordLogin(at time.Time) {
	u.lastLoginAt = &at
	u.updatedAt = at
}

// UpdateProfile mutates name and email.
func (u *User) UpdateProfile(email, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("name is required")
	}

	u.email = email
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole reassigns the user's role. Tokens already issued keep the old
// role until they expire; the role is immutable per session.
func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// SetSchools replaces both affiliation sets.
func (u *User) SetSchools(schoolIDs, assignedSchoolIDs []uint) {
	u.schoolIDs = normalizeIDs(schoolIDs)
	u.assignedSchoolIDs = normalizeIDs(assignedSchoolIDs)
	u.updatedAt = time.Now()
}

// ChangePasswordHash swaps the stored hash.
func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Activate() {
	u.status = StatusActive
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.status = StatusInactive
	u.updatedAt = time.Now()
}
