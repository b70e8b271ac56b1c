// Package school contains the School aggregate: the organizational unit
// every asset, ticket, and user affiliation refers to.
package school

import (
	"fmt"
	"strings"
	"time"
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

// Contact holds the primary contact person for a school.
type Contact struct {
	Name  string
	Email string
	Phone string
}

type School struct {
	id        uint
	name      string
	code      string
	address   string
	region    string
	contact   Contact
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewSchool creates a school pending persistence. The code is normalized to
// uppercase; uniqueness is checked by the usecase before insert.
func NewSchool(name, code, address, region string, contact Contact) (*School, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 0 {
		return nil, fmt.Errorf("code is required")
	}
	if len(code) > 20 {
		return nil, fmt.Errorf("code exceeds maximum length of 20 characters")
	}
	if len(strings.TrimSpace(region)) == 0 {
		return nil, fmt.Errorf("region is required")
	}

	now := time.Now()
	return &School{
		name:      name,
		code:      code,
		address:   address,
		region:    region,
		contact:   contact,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSchool rebuilds a school from persisted state.
func ReconstructSchool(
	id uint,
	name, code, address, region string,
	contact Contact,
	status Status,
	createdAt, updatedAt time.Time,
) (*School, error) {
	if id == 0 {
		return nil, fmt.Errorf("school ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("code is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &School{
		id:        id,
		name:      name,
		code:      code,
		address:   address,
		region:    region,
		contact:   contact,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *School) ID() uint             { return s.id }
func (s *School) Name() string         { return s.name }
func (s *School) Code() string         { return s.code }
func (s *School) Address() string      { return s.address }
func (s *School) Region() string       { return s.region }
func (s *School) Contact() Contact     { return s.contact }
func (s *School) Status() Status       { return s.status }
func (s *School) CreatedAt() time.Time { return s.createdAt }
func (s *School) UpdatedAt() time.Time { return s.updatedAt }

func (s *School) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("school ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("school ID cannot be zero")
	}
	s.id = id
	return nil
}

// UpdateDetails mutates the descriptive fields. The code is immutable after
// creation; it is referenced in printed asset labels.
func (s *School) UpdateDetails(name, address, region string, contact Contact) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(strings.TrimSpace(region)) == 0 {
		return fmt.Errorf("region is required")
	}

	s.name = name
	s.address = address
	s.region = region
	s.contact = contact
	s.updatedAt = time.Now()
	return nil
}

func (s *School) Activate() {
	s.status = StatusActive
	s.updatedAt = time.Now()
}

func (s *School) Deactivate() {
	s.status = StatusInactive
	s.updatedAt = time.Now()
}

func (s *School) IsActive() bool {
	return s.status == StatusActive
}
