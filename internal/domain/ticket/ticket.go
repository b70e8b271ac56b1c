// Package ticket contains the Ticket aggregate: a reported issue tied to a
// school and optionally to a deployed asset, with SLA deadlines frozen at
// creation.
package ticket

import (
	"fmt"
	"time"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

// Contact identifies the person who reported the issue.
type Contact struct {
	Name  string
	Email string
	Phone string
}

type Ticket struct {
	id              uint
	number          string
	schoolID        uint
	assetID         *uint
	category        vo.Category
	title           string
	description     string
	priority        vo.Priority
	status          vo.TicketStatus
	contact         Contact
	sla             SLA
	assigneeID      *uint
	firstResponseAt *time.Time
	resolvedAt      *time.Time
	closedAt        *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket creates a ticket in the new state. The ticket number and the SLA
// deadlines are fixed here and never recomputed.
func NewTicket(
	schoolID uint,
	assetID *uint,
	category vo.Category,
	title string,
	description string,
	priority vo.Priority,
	contact Contact,
) (*Ticket, error) {
	if schoolID == 0 {
		return nil, fmt.Errorf("school ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		priority = vo.DefaultPriority
	}

	now := time.Now()
	number, err := GenerateNumber(now)
	if err != nil {
		return nil, err
	}

	return &Ticket{
		number:      number,
		schoolID:    schoolID,
		assetID:     assetID,
		category:    category,
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusNew,
		contact:     contact,
		sla:         NewSLA(priority, now),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	id uint,
	number string,
	schoolID uint,
	assetID *uint,
	category vo.Category,
	title, description string,
	priority vo.Priority,
	status vo.TicketStatus,
	contact Contact,
	sla SLA,
	assigneeID *uint,
	firstResponseAt, resolvedAt, closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if schoolID == 0 {
		return nil, fmt.Errorf("school ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:              id,
		number:          number,
		schoolID:        schoolID,
		assetID:         assetID,
		category:        category,
		title:           title,
		description:     description,
		priority:        priority,
		status:          status,
		contact:         contact,
		sla:             sla,
		assigneeID:      assigneeID,
		firstResponseAt: firstResponseAt,
		resolvedAt:      resolvedAt,
		closedAt:        closedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                    { return t.id }
func (t *Ticket) Number() string              { return t.number }
func (t *Ticket) SchoolID() uint              { return t.schoolID }
func (t *Ticket) AssetID() *uint              { return t.assetID }
func (t *Ticket) Category() vo.Category       { return t.category }
func (t *Ticket) Title() string               { return t.title }
func (t *Ticket) Description() string         { return t.description }
func (t *Ticket) Priority() vo.Priority       { return t.priority }
func (t *Ticket) Status() vo.TicketStatus     { return t.status }
func (t *Ticket) Contact() Contact            { return t.contact }
func (t *Ticket) SLA() SLA                    { return t.sla }
func (t *Ticket) AssigneeID() *uint           { return t.assigneeID }
func (t *Ticket) FirstResponseAt() *time.Time { return t.firstResponseAt }
func (t *Ticket) ResolvedAt() *time.Time      { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time        { return t.closedAt }
func (t *Ticket) Version() int                { return t.version }
func (t *Ticket) CreatedAt() time.Time        { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time        { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetStatus overwrites the status unconditionally for any valid value;
// ordering is not enforced so staff can jump or rewind states. Milestone
// timestamps are recorded the first time each state is reached.
func (t *Ticket) SetStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	now := time.Now()

	if t.status.IsNew() && !newStatus.IsNew() && t.firstResponseAt == nil {
		t.firstResponseAt = &now
	}
	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}
	if newStatus.IsClosed() && t.closedAt == nil {
		t.closedAt = &now
	}

	t.status = newStatus
	t.updatedAt = now
	t.version++
	return nil
}

// AssignTo sets the assignee and moves a new ticket into the assigned state.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	if t.status.IsNew() {
		return t.SetStatus(vo.StatusAssigned)
	}
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// ChangePriority reclassifies the ticket. SLA deadlines stay frozen at their
// creation-time values.
func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// ResponseMet derives SLA response compliance at the given instant.
func (t *Ticket) ResponseMet(now time.Time) bool {
	return t.sla.ResponseMet(t.firstResponseAt, now)
}

// ResolutionMet derives SLA resolution compliance at the given instant.
func (t *Ticket) ResolutionMet(now time.Time) bool {
	return t.sla.ResolutionMet(t.resolvedAt, now)
}

// IsOverdue reports whether an unresolved ticket has blown its resolution
// deadline.
func (t *Ticket) IsOverdue(now time.Time) bool {
	if !t.status.IsOpen() {
		return false
	}
	return now.After(t.sla.ResolutionDeadline)
}
